package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xiam/binspec/internal/ctxlog"
)

var (
	colorMode   string
	verbose     bool
	presetsPath string
	presetName  string
)

var (
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

var rootCmd = &cobra.Command{
	Use:   "binspec",
	Short: "Validate and inspect bin group specifications",
	Long: `Binspec parses bin group specifications, the parenthesized values that
describe which positional ranges a signal aggregator collapses and at
which resolution, e.g. "(36-149 1) (150-224 225-324 2) (325-400 5)".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch colorMode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
			color.NoColor = !isTerminal(os.Stderr)
		default:
			return fmt.Errorf("unknown color mode: %s", colorMode)
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		}))
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets", "", "path to a TOML presets file")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "read the specification from a named preset")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
