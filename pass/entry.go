package pass

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrEmpty is returned by Decode when the content has no lines at all and
// therefore cannot supply a secret.
var ErrEmpty = errors.New("entry is empty")

// ErrInvalidEncoding is returned by Decode when the content cannot be
// interpreted as UTF-8 text.
var ErrInvalidEncoding = errors.New("entry is not valid UTF-8")

// An Entry is the decoded representation of one password store record.
//
// Name is supplied by the caller and is never parsed from the content.
// Secret is always present once decoding succeeds; Login and URL are left
// empty when the corresponding directive is absent.
type Entry struct {
	Name     string   `json:"name"`
	Secret   string   `json:"secret"`
	Login    string   `json:"login,omitempty"`
	URL      string   `json:"url,omitempty"`
	Comments []string `json:"comments,omitempty"`
}

// Decode decodes a single pass entry from its raw decrypted bytes.
//
// The first line becomes the secret, verbatim. Every following line either
// carries a recognized directive ("login", "url") or is retained in order as
// a comment. Decoding is pure: it performs no I/O and identical input always
// yields an identical Entry, so Decode may be called concurrently from
// independent call sites.
//
// Decode fails with ErrEmpty when content is empty and with
// ErrInvalidEncoding when content is not valid UTF-8. Malformed or duplicate
// directives are not errors.
func Decode(name string, content []byte) (*Entry, error) {
	if len(content) == 0 {
		return nil, ErrEmpty
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidEncoding
	}
	return DecodeString(name, string(content))
}

// DecodeString decodes a single pass entry from text that is already known
// to be valid UTF-8. It behaves exactly like Decode otherwise.
func DecodeString(name, data string) (*Entry, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	// A single terminating newline closes the last line; it does not open
	// an empty one.
	lines := strings.Split(strings.TrimSuffix(data, "\n"), "\n")

	e := &Entry{
		Name:   name,
		Secret: trimLineEnding(lines[0]),
	}

	var haveLogin, haveURL bool
	for _, line := range lines[1:] {
		line = trimLineEnding(line)
		key, value, ok := splitDirective(line)
		if ok {
			switch key {
			case "login":
				if !haveLogin {
					e.Login, haveLogin = value, true
					continue
				}
			case "url":
				if !haveURL {
					e.URL, haveURL = value, true
					continue
				}
			}
		}
		e.Comments = append(e.Comments, line)
	}
	return e, nil
}

// splitDirective splits a line into a directive key and value. The key is
// matched at the start of the line, after optional leading whitespace, and
// is reported lowercased; the value is everything after the first ':' with
// surrounding whitespace removed. ok is false when the line has no ':' or
// the key is not one of the recognized directives.
func splitDirective(line string) (key, value string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	i := strings.IndexByte(trimmed, ':')
	if i <= 0 {
		return "", "", false
	}
	key = strings.ToLower(trimmed[:i])
	if key != "login" && key != "url" {
		return "", "", false
	}
	return key, strings.TrimSpace(trimmed[i+1:]), true
}

func trimLineEnding(line string) string {
	return strings.TrimSuffix(line, "\r")
}
