package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// defaultPresetsPath is probed when --presets is not set; a missing file
// is not an error in that case.
const defaultPresetsPath = "binspec.toml"

var builtinPresets = map[string]string{
	"atac": "(36-149 1) (150-224 225-324 2) (325-400 5)",
}

type presetsFile struct {
	Presets map[string]string `toml:"presets"`
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available specification presets",
	Long: `Presets lists the built-in specification presets together with any
loaded from a TOML presets file, e.g.:

	[presets]
	nucleosome = "(150-224 225-324 2)"

File entries override built-ins with the same name.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	presets, err := loadPresets()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSPEC")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, presets[name])
	}

	return w.Flush()
}

func loadPresets() (map[string]string, error) {
	presets := map[string]string{}
	for name, spec := range builtinPresets {
		presets[name] = spec
	}

	path := presetsPath
	if path == "" {
		path = defaultPresetsPath
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return presets, nil
		}
	}

	var file presetsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%s: failed to read presets: %w", path, err)
	}
	for name, spec := range file.Presets {
		presets[name] = spec
	}

	return presets, nil
}
