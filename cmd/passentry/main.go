package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/atotto/clipboard"
	"github.com/caarlos0/env/v11"
	"github.com/howeyc/gopass"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/e-XpertSolutions/go-pass/pass"
)

func usage() {
	fmt.Fprint(os.Stderr, "Passentry is a command line tool to decode pass (passwordstore.org) entries.\n\n")
	fmt.Fprint(os.Stderr, "Usage:\n\n\tpassentry [FLAGS...] [COMMAND] [ARGS...]\n\n")
	fmt.Fprint(os.Stderr, `The commands are:

show    run the pass binary for an entry and print the decoded fields. This
        command requires 1 argument: [NAME], the entry name known to pass.
decode  decode an already-decrypted entry file. This command requires 1
        argument: [FILE]. Use "-" to read from standard input.
compose prompt for a secret and print an entry in the pass textual format,
        suitable for piping to "pass insert -m [NAME]". This command requires
        1 argument: [NAME]. Any additional arguments become comment lines.

The environment variables are:

PASSENTRY_PASS_BIN  the pass binary to invoke (default "pass")
PASSENTRY_TIMEOUT   timeout for invoking the pass binary (default "10s")

The global flags are:`)
	fmt.Fprint(os.Stderr, "\n\n")
	flag.PrintDefaults()
	os.Exit(1)
}

// version
const (
	major = "1"
	minor = "0"
	patch = "0"
)

// printVersion prints the current version of the program and then exits.
func printVersion() {
	fmt.Printf("passentry v%s.%s.%s\n", major, minor, patch)
	os.Exit(0)
}

// config controls how the external pass binary is invoked. It is populated
// from the environment.
type config struct {
	PassBin string        `env:"PASSENTRY_PASS_BIN" envDefault:"pass"`
	Timeout time.Duration `env:"PASSENTRY_TIMEOUT" envDefault:"10s"`
}

// Command line flags.
var (
	version    = flag.Bool("version", false, "print version")
	asJSON     = flag.Bool("json", false, "print the decoded entry as JSON")
	copySecret = flag.Bool("copy", false, "copy the secret to the clipboard instead of printing it")
	login      = flag.String("login", "", "login directive for the compose command")
	url        = flag.String("url", "", "url directive for the compose command")
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	flag.Usage = usage
	flag.Parse()

	if *version {
		printVersion()
	}

	if flag.NArg() < 2 {
		flag.Usage()
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("cannot read configuration from environment")
	}

	switch cmd := flag.Arg(0); cmd {
	case "show":
		name := flag.Arg(1)
		content, err := runPass(cfg, name)
		if err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("cannot read entry from pass")
		}
		entry, err := pass.Decode(name, content)
		if err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("cannot decode entry")
		}
		if err := render(os.Stdout, entry); err != nil {
			log.Fatal().Err(err).Msg("cannot render entry")
		}
	case "decode":
		file := flag.Arg(1)
		content, err := readContent(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("cannot read entry file")
		}
		entry, err := pass.Decode(file, content)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("cannot decode entry")
		}
		if err := render(os.Stdout, entry); err != nil {
			log.Fatal().Err(err).Msg("cannot render entry")
		}
	case "compose":
		fmt.Fprint(os.Stderr, "Secret: ")
		secret, err := gopass.GetPasswd()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read secret")
		}
		entry := &pass.Entry{
			Name:     flag.Arg(1),
			Secret:   string(secret),
			Login:    *login,
			URL:      *url,
			Comments: flag.Args()[2:],
		}
		if _, err := os.Stdout.Write(entry.Encode()); err != nil {
			log.Fatal().Err(err).Msg("cannot write entry")
		}
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command")
	}
}

// runPass invokes the external pass binary and returns the decrypted entry
// content it writes to stdout.
func runPass(cfg config, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, cfg.PassBin, "show", name).Output()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot run %q", cfg.PassBin)
	}
	return out, nil
}

func readContent(file string) ([]byte, error) {
	if file == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read standard input")
		}
		return content, nil
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read file")
	}
	return content, nil
}

// render prints a decoded entry. With -copy the secret goes to the system
// clipboard and is omitted from the output.
func render(w io.Writer, entry *pass.Entry) error {
	out := *entry
	if *copySecret {
		if err := clipboard.WriteAll(out.Secret); err != nil {
			return errors.Wrap(err, "cannot copy secret to clipboard")
		}
		out.Secret = ""
	}

	if *asJSON {
		b, err := json.MarshalIndent(&out, "", "  ")
		if err != nil {
			return errors.Wrap(err, "cannot marshal entry")
		}
		fmt.Fprintln(w, string(b))
		return nil
	}

	fmt.Fprintln(w, "Name:  ", out.Name)
	if *copySecret {
		fmt.Fprintln(w, "Secret: (copied to clipboard)")
	} else {
		fmt.Fprintln(w, "Secret:", out.Secret)
	}
	if out.Login != "" {
		fmt.Fprintln(w, "Login: ", out.Login)
	}
	if out.URL != "" {
		fmt.Fprintln(w, "URL:   ", out.URL)
	}
	for _, c := range out.Comments {
		fmt.Fprintln(w, "\t-", c)
	}
	return nil
}
