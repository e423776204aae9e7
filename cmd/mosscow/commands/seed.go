package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/mosscow/internal/seed"
	"github.com/erraggy/mosscow/internal/store"
)

// SetupSeedFlags creates and configures a FlagSet for the seed command.
func SetupSeedFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mosscow seed <file>\n\n")
		Writef(output, "Insert the todos listed in a YAML file.\n\n")
		Writef(output, "The file holds a list of todos or a mapping with a todos key.\n")
		Writef(output, "Keys may be camelCase or snake_case.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  mosscow seed db/seeds.yml\n")
	}
	return fs
}

// HandleSeed executes the seed command
func HandleSeed(args []string) error {
	fs := SetupSeedFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("seed command requires exactly one file path")
	}

	records, err := seed.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	n, err := seed.Run(context.Background(), store.NewTodos(env.db), records, env.log)
	if err != nil {
		return fmt.Errorf("seeded %d of %d todos: %w", n, len(records), err)
	}
	Writef(os.Stdout, "Seeded %d todos\n", n)
	return nil
}
