package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// SetupMigrateFlags creates and configures a FlagSet for the migrate command.
func SetupMigrateFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mosscow migrate\n\n")
		Writef(output, "Create or update the todos table in the database selected by MOSSCOW_ENV.\n")
	}
	return fs
}

// HandleMigrate executes the migrate command
func HandleMigrate(args []string) error {
	fs := SetupMigrateFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("migrate command takes no arguments")
	}

	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	Writef(os.Stdout, "Migrated %s database %s (%s)\n", env.dbc.Adapter, env.dbc.Database, env.cfg.Env)
	return nil
}
