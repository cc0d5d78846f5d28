package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"seatmap-cli/tui"
)

const appName = "seatmap-cli"

const defaultVenueSource = "venue.json"

var (
	version = "dev"
	commit  = "none"
)

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [--version] [venue-file-or-url]\n", appName)
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

// handleArgs returns the venue source to load and whether the TUI should run.
func handleArgs(args []string) (string, bool) {
	source := ""
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			printUsage(os.Stdout)
			return "", false
		case "-v", "--version", "version":
			printVersion()
			return "", false
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
				printUsage(os.Stderr)
				os.Exit(2)
			}
			source = arg
		}
	}
	return source, true
}

func venueSource(arg string) string {
	if arg != "" {
		return arg
	}
	if env := strings.TrimSpace(os.Getenv("SEATMAP_VENUE")); env != "" {
		return env
	}
	return defaultVenueSource
}

func main() {
	_ = godotenv.Load()

	arg, run := handleArgs(os.Args[1:])
	if !run {
		return
	}

	program := tea.NewProgram(
		tui.New(venueSource(arg)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
