package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/apperr"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv parser.LookupEnv, stdout, stderr io.Writer) int {
	// инициализировать параметры запуска - режим и прочее:
	cfg, err := parser.BuildConfig(args, lookupEnv)
	if err != nil {
		if errors.Is(err, parser.ErrHelp) {
			fmt.Fprint(stdout, parser.Usage())
			return 0
		}
		report(stderr, err, lookupEnv)
		return 1
	}

	log := logger.New(stderr, logger.LevelFor(cfg.Mode == model.ModeServe, cfg.Verbose))

	// запуск приложения в указанном режиме
	switch cfg.Mode {
	case model.ModeServe:
		// готовим слушатель прерываний - контекст для всего приложения
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := appmode.RunServer(ctx, stop, cfg, log); err != nil {
			report(stderr, err, lookupEnv)
			return 1
		}
	default:
		if err := appmode.RunSearch(cfg, stdout, log); err != nil {
			report(stderr, err, lookupEnv)
			return 1
		}
	}
	return 0
}

// report печатает однострочную диагностику, префикс зависит от вида ошибки
func report(w io.Writer, err error, lookupEnv parser.LookupEnv) {
	c := color.New(color.FgRed, color.Bold)
	// цвет решается по самому w, а не по stdout
	if colorable(w, lookupEnv) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprintf(w, "%s: %s\n", c.Sprint(apperr.Prefix(err)), apperr.Message(err))
}

func colorable(w io.Writer, lookupEnv parser.LookupEnv) bool {
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
