package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// resolveSpec picks the specification string for a subcommand: a named
// preset when --preset is set, otherwise the positional argument, with
// "-" standing for stdin.
func resolveSpec(cmd *cobra.Command, args []string) (string, error) {
	if presetName != "" {
		presets, err := loadPresets()
		if err != nil {
			return "", err
		}
		spec, ok := presets[presetName]
		if !ok {
			return "", fmt.Errorf("unknown preset %q", presetName)
		}
		return spec, nil
	}

	if len(args) < 1 {
		return "", errors.New("missing specification argument (pass a spec, \"-\" for stdin, or --preset)")
	}

	if args[0] == "-" {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(in), nil
	}

	return args[0], nil
}

// warnWriter colors the warning lines the parser emits while keeping
// them on the command's error stream.
type warnWriter struct {
	out io.Writer
}

func (w warnWriter) Write(p []byte) (int, error) {
	if _, err := warnColor.Fprint(w.out, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
