package main

import (
	"github.com/spf13/cobra"

	"github.com/xiam/binspec"
	"github.com/xiam/binspec/internal/ctxlog"
)

var checkCmd = &cobra.Command{
	Use:   "check [spec]",
	Short: "Validate a bin group specification",
	Long: `Check parses a bin group specification and verifies that every group
carries a positive integer resolution, every bin is a start-end integer
pair, and no two bins overlap. Backward ranges are reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd, args)
	if err != nil {
		return err
	}

	groups, err := binspec.Parse(spec, binspec.WithWarningWriter(warnWriter{out: cmd.ErrOrStderr()}))
	if err != nil {
		return err
	}

	bins := groups.Flatten()
	ctxlog.FromContext(cmd.Context()).Debug("specification parsed",
		"groups", len(groups), "bins", len(bins))

	okColor.Fprintf(cmd.OutOrStdout(), "ok: %d groups, %d bins\n", len(groups), len(bins))
	return nil
}
