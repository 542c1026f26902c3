package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xiam/binspec"
	"github.com/xiam/binspec/internal/ctxlog"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show [spec]",
	Short: "Print the bins described by a specification",
	Long:  `Show parses a bin group specification and prints the resulting bin table.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "pretty", "output format (pretty|json)")
}

type binPayload struct {
	Group      int `json:"group"`
	Start      int `json:"start"`
	End        int `json:"end"`
	Resolution int `json:"resolution"`
}

func runShow(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd, args)
	if err != nil {
		return err
	}

	groups, err := binspec.Parse(spec, binspec.WithWarningWriter(warnWriter{out: cmd.ErrOrStderr()}))
	if err != nil {
		return err
	}

	ctxlog.FromContext(cmd.Context()).Debug("specification parsed",
		"groups", len(groups), "bins", len(groups.Flatten()))

	switch showFormat {
	case "pretty":
		return renderBinsPretty(cmd.OutOrStdout(), groups)
	case "json":
		return renderBinsJSON(cmd.OutOrStdout(), groups)
	default:
		return fmt.Errorf("unknown format: %s", showFormat)
	}
}

func renderBinsPretty(out io.Writer, groups binspec.Groups) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "GROUP\tRANGE\tRESOLUTION\tLENGTH")
	for g, group := range groups {
		for _, b := range group {
			fmt.Fprintf(w, "%d\t%d-%d\t%d\t%d\n",
				g, b.Start(), b.End(), b.Resolution(), b.End()-b.Start()+1)
		}
	}

	return w.Flush()
}

func renderBinsJSON(out io.Writer, groups binspec.Groups) error {
	payload := []binPayload{}
	for g, group := range groups {
		for _, b := range group {
			payload = append(payload, binPayload{
				Group:      g,
				Start:      b.Start(),
				End:        b.End(),
				Resolution: b.Resolution(),
			})
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
