package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/mosscow/internal/apidoc"
)

// OpenAPIFlags contains flags for the openapi command
type OpenAPIFlags struct {
	Format string
	Output string
}

// SetupOpenAPIFlags creates and configures a FlagSet for the openapi command.
func SetupOpenAPIFlags() (*flag.FlagSet, *OpenAPIFlags) {
	fs := flag.NewFlagSet("openapi", flag.ContinueOnError)
	flags := &OpenAPIFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Output, "o", "", "write to file instead of stdout")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mosscow openapi [flags]\n\n")
		Writef(output, "Print the OpenAPI 3.1 description of the todo API.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  mosscow openapi\n")
		Writef(output, "  mosscow openapi -format yaml -o openapi.yaml\n")
	}

	return fs, flags
}

// HandleOpenAPI executes the openapi command
func HandleOpenAPI(args []string) error {
	fs, flags := SetupOpenAPIFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("openapi command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := apidoc.Build()
	if err != nil {
		return err
	}
	data := doc.JSON
	if flags.Format == FormatYAML {
		data = doc.YAML
	}

	if flags.Output == "" {
		Writef(os.Stdout, "%s\n", data)
		return nil
	}
	if err := os.WriteFile(flags.Output, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	Writef(os.Stderr, "Wrote %s\n", flags.Output)
	return nil
}
