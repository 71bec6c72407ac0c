package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"spellout/internal/config"
	"spellout/internal/overrides"
	"spellout/spellabet"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

var errMissingInput = errors.New("the following required arguments were not provided: <STRING>...")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	stdinIsTerminal func() bool
}

func main() {
	_ = godotenv.Load() // a missing .env is fine

	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdinIsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	if err := a.run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "spellout: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newFlagSet(w io.Writer) *pflag.FlagSet {
	names := make([]string, 0, len(spellabet.Alphabets()))
	for _, a := range spellabet.Alphabets() {
		names = append(names, a.String())
	}

	fs := pflag.NewFlagSet("spellout", pflag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringP("config", "c", "", "Path to a YAML config file")
	fs.StringP("alphabet", "a", spellabet.DefaultAlphabet.String(),
		"Which spelling alphabet to use for the conversion ("+strings.Join(names, ", ")+")")
	fs.StringP("overrides", "o", "",
		`Comma-separated character=word pairs like "a=apple,b=banana" overriding the default code words`)
	fs.String("overrides-file", "", "YAML file with an 'overrides' map of character: word")
	fs.Bool("dump-alphabet", false, "Display the spelling alphabet and exit (add --verbose to include digits and symbols)")
	fs.BoolP("nonce-form", "n", false, `Expand output into nonce form like "'A' as in ALFA"`)
	fs.BoolP("verbose", "v", false, "Use verbose output (include the input along with each line's output)")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	fs.Bool("version", false, "Print version information and exit")
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: spellout [OPTIONS] [STRING]...\n\n")
		fmt.Fprintf(w, "Convert each STRING into spelling alphabet code words. With no STRING,\n")
		fmt.Fprintf(w, "lines are read from standard input.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	return fs
}

func (a *app) run(args []string) error {
	fs := newFlagSet(a.stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError{err}
	}

	if v, _ := fs.GetBool("version"); v {
		fmt.Fprintf(a.stdout, "spellout %s\n", version)
		return nil
	}

	configPath, _ := fs.GetString("config")
	cfg, err := config.Load(configPath, fs)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := config.SetupLogger(cfg, a.stderr)

	converter, err := buildConverter(cfg, logger)
	if err != nil {
		return err
	}

	if dump, _ := fs.GetBool("dump-alphabet"); dump {
		return converter.DumpAlphabet(a.stdout, cfg.Verbose)
	}

	if inputs := fs.Args(); len(inputs) > 0 {
		logger.Debug("converting arguments", "count", len(inputs))
		return convertArgs(a.stdout, inputs, converter, cfg.Verbose)
	}

	if a.stdinIsTerminal != nil && a.stdinIsTerminal() {
		fs.Usage()
		return usageError{errMissingInput}
	}

	logger.Debug("converting standard input")
	return convertLines(a.stdout, a.stdin, converter, cfg.Verbose)
}

func convertArgs(out io.Writer, inputs []string, converter *spellabet.PhoneticConverter, verbose bool) (err error) {
	w := bufio.NewWriter(out)
	defer flush(w, &err)

	for _, input := range inputs {
		if err := processInput(w, input, converter, verbose); err != nil {
			return err
		}
	}
	return nil
}

// convertLines converts in line by line. Lines have no length limit and
// output already converted is flushed even when reading fails later.
func convertLines(out io.Writer, in io.Reader, converter *spellabet.PhoneticConverter, verbose bool) (err error) {
	w := bufio.NewWriter(out)
	defer flush(w, &err)

	r := bufio.NewReader(in)
	for {
		line, rerr := r.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return fmt.Errorf("failed to read line from stdin: %w", rerr)
		}
		if line != "" {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if err := processInput(w, line, converter, verbose); err != nil {
				return err
			}
		}
		if rerr != nil {
			return nil
		}
	}
}

func flush(w *bufio.Writer, err *error) {
	if ferr := w.Flush(); *err == nil {
		*err = ferr
	}
}

func buildConverter(cfg config.Config, logger *slog.Logger) (*spellabet.PhoneticConverter, error) {
	converter := spellabet.New(cfg.Alphabet).NonceForm(cfg.NonceForm)
	logger.Debug("alphabet selected", "alphabet", cfg.Alphabet.String(), "nonce_form", cfg.NonceForm)

	var ov map[rune]string
	if cfg.OverridesFile != "" {
		m, err := overrides.Load(cfg.OverridesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load overrides file: %w", err)
		}
		ov = overrides.Merge(ov, m)
	}
	if cfg.Overrides != "" {
		m, err := overrides.Parse(cfg.Overrides)
		if err != nil {
			return nil, fmt.Errorf("failed to parse overrides: %w", err)
		}
		ov = overrides.Merge(ov, m)
	}
	if len(ov) > 0 {
		logger.Debug("applying overrides", "count", len(ov))
		converter = converter.WithOverrides(ov)
	}
	return converter, nil
}

func processInput(w io.Writer, input string, converter *spellabet.PhoneticConverter, verbose bool) error {
	var err error
	if verbose {
		_, err = fmt.Fprintf(w, "%s -> %s\n", input, converter.Convert(input))
	} else {
		_, err = fmt.Fprintln(w, converter.Convert(input))
	}
	return err
}
