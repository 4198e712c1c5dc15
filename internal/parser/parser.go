// Package parser puts command-line args and environment into a Config structure and validates it
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/apperr"
	"github.com/UnendingLoop/minigrep/internal/model"
	flag "github.com/spf13/pflag"
)

var ErrNotEnoughArgs = errors.New("not enough arguments given")

// ErrHelp is returned when -h/--help was requested.
var ErrHelp = flag.ErrHelp

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

type flagValues struct {
	mode       *string
	address    *string
	ignoreCase *bool
	verbose    *bool
}

func newFlagSet() (*flag.FlagSet, flagValues) {
	fs := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	return fs, flagValues{
		mode:       fs.String("mode", string(model.ModeSearch), "specify mode of the app: 'search' or 'serve'"),
		address:    fs.String("address", model.DefaultServerAddress, "listen address for 'serve'-mode"),
		ignoreCase: fs.BoolP("ignore-case", "i", false, fmt.Sprintf("ignore letter case (same as setting %s)", model.IgnoreCaseEnv)),
		verbose:    fs.BoolP("verbose", "v", false, "write debug logs to stderr"),
	}
}

// Usage - текст справки для -h/--help
func Usage() string {
	fs, _ := newFlagSet()
	var b strings.Builder
	b.WriteString("Usage: minigrep [flags] <query> <file-path>\n\nFlags:\n")
	b.WriteString(fs.FlagUsages())
	fmt.Fprintf(&b, "\nEnvironment:\n  %s    if set to any value, matching ignores letter case\n", model.IgnoreCaseEnv)
	return b.String()
}

func BuildConfig(args []string, lookupEnv LookupEnv) (*model.Config, error) {
	fs, fv := newFlagSet()

	// флаги читаются только до первого позиционного аргумента
	flagArgs, positional := splitArgs(fs, args)

	// парсим аргументы
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, apperr.Config(ErrHelp)
		}
		return nil, apperr.Config(err)
	}

	cfg := model.Config{
		Mode:    model.AppMode(*fv.mode),
		Address: *fv.address,
		Verbose: *fv.verbose,
	}

	// регистр игнорируется, если задан флаг или переменная окружения присутствует - значение не важно
	_, envSet := lookupEnv(model.IgnoreCaseEnv)
	cfg.CasePolicy = model.PolicyFor(*fv.ignoreCase || envSet)

	switch cfg.Mode {
	case model.ModeSearch:
		// лишние позиционные аргументы игнорируются
		if len(positional) < 2 {
			return nil, apperr.Config(ErrNotEnoughArgs)
		}
		cfg.Query = positional[0]
		cfg.FilePath = positional[1]
	case model.ModeServe:
		if cfg.Address == "" {
			return nil, apperr.Config(errors.New("empty server address"))
		}
	default:
		return nil, apperr.Config(fmt.Errorf("unknown mode %q specified", cfg.Mode))
	}

	return &cfg, nil
}

// splitArgs returns the leading run of args that are known flags (with their values)
// and everything after it. An argument starting with '-' that is not a known flag
// is the first positional, so queries like "-foo" need no "--".
func splitArgs(fs *flag.FlagSet, args []string) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args[:i], args[i+1:]
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			return args[:i], args[i:]
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			if name == "help" {
				continue
			}
			f := fs.Lookup(name)
			if f == nil {
				return args[:i], args[i:]
			}
			// значение флага в следующем аргументе
			if !hasValue && f.NoOptDefVal == "" {
				i++
			}
		default:
			if !isShorthandGroup(fs, arg[1:]) {
				return args[:i], args[i:]
			}
		}
	}
	return args, nil
}

// isShorthandGroup reports whether every letter of s is a boolean shorthand, e.g. "iv".
func isShorthandGroup(fs *flag.FlagSet, s string) bool {
	for _, c := range s {
		if c == 'h' {
			continue
		}
		f := fs.ShorthandLookup(string(c))
		if f == nil || f.NoOptDefVal == "" {
			return false
		}
	}
	return true
}
