package pass

import "bytes"

// Encode renders the entry back into the pass textual convention: the secret
// line first, then a directive line for Login and URL when they are set, then
// the comments in order. Every line is terminated with '\n'.
//
// Decoding the result reproduces the entry, provided none of the comments is
// itself shaped like a recognized directive.
func (e *Entry) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(e.Secret)
	buf.WriteByte('\n')
	if e.Login != "" {
		buf.WriteString("login: ")
		buf.WriteString(e.Login)
		buf.WriteByte('\n')
	}
	if e.URL != "" {
		buf.WriteString("url: ")
		buf.WriteString(e.URL)
		buf.WriteByte('\n')
	}
	for _, c := range e.Comments {
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
