package main

import (
	"fmt"
	"os"

	"github.com/erraggy/mosscow"
	"github.com/erraggy/mosscow/cmd/mosscow/commands"
)

var handlers = map[string]func([]string) error{
	"serve":   commands.HandleServe,
	"migrate": commands.HandleMigrate,
	"seed":    commands.HandleSeed,
	"openapi": commands.HandleOpenAPI,
	"mcp":     commands.HandleMCP,
}

// commandNames lists every command for suggestions.
var commandNames = []string{"serve", "migrate", "seed", "openapi", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("mosscow v%s (commit %s, built %s)\n", mosscow.Version(), mosscow.Commit(), mosscow.BuildTime())
	case "help", "-h", "--help":
		printUsage()
	default:
		handle, ok := handlers[command]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
			if s := suggestCommand(command); s != "" {
				fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
			}
			fmt.Fprintln(os.Stderr)
			printUsage()
			os.Exit(1)
		}
		if err := handle(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`mosscow - todo list API with camelCase/snake_case key conversion

Usage:
  mosscow <command> [flags]

Commands:
  serve      Serve the HTTP API and pages
  migrate    Create or update the database schema
  seed       Insert todos from a YAML file
  openapi    Print the OpenAPI description of the API
  mcp        Serve the todo tools over MCP (stdio)
  version    Show version information
  help       Show this help message

Environment:
  MOSSCOW_ENV                development, test or production (default development)
  MOSSCOW_ADDR               listen address (default :4567)
  MOSSCOW_DATABASE_FILE      database file (default config/database.yml)
  MOSSCOW_PUBLIC_DIR         serve static files from this directory
  MOSSCOW_LOG_LEVEL          override the log level
  MOSSCOW_LOG_FORMAT         text or json
  MOSSCOW_VALIDATE_REQUESTS  check API requests against the OpenAPI document
  MOSSCOW_SHUTDOWN_TIMEOUT   graceful shutdown timeout (default 10s)

Run 'mosscow <command> --help' for more information on a command.`)
}
