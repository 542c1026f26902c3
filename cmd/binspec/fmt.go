package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/binspec"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [spec]",
	Short: "Print the canonical form of a specification",
	Long: `Fmt parses a bin group specification and prints it back in canonical
form: backward ranges corrected and whitespace collapsed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func runFmt(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd, args)
	if err != nil {
		return err
	}

	groups, err := binspec.Parse(spec, binspec.WithWarningWriter(warnWriter{out: cmd.ErrOrStderr()}))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), groups.String())
	return nil
}
