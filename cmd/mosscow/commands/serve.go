package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/mosscow/internal/server"
	"github.com/erraggy/mosscow/internal/store"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr string
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", "", "listen address (overrides MOSSCOW_ADDR)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mosscow serve [flags]\n\n")
		Writef(output, "Serve the todo API and pages until interrupted.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  mosscow serve\n")
		Writef(output, "  MOSSCOW_ENV=production mosscow serve -addr :8080\n")
	}

	return fs, flags
}

// HandleServe executes the serve command
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve command takes no arguments")
	}

	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	if flags.Addr != "" {
		env.cfg.Addr = flags.Addr
	}

	srv, err := server.New(env.cfg, env.log, store.NewTodos(env.db))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
