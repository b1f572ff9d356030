package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/detect"
)

type detection struct {
	File   string           `json:"file"`
	Format canonical.Format `json:"format"`
}

var detectCmd = &cobra.Command{
	Use:   "detect <file>...",
	Short: "Guess which editor format a file is in",
	Long: `Guess which editor format each file is in. Detection is a
best-effort heuristic based on front-matter delimiters, JSON literals and
markdown headings; it can be wrong on unusual input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		var merr *multierror.Error
		var results []detection
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				merr = multierror.Append(merr, errors.Wrapf(err, "reading %s", path))
				continue
			}
			results = append(results, detection{File: path, Format: detect.Detect(string(content))})
		}

		if jsonOutput {
			encoded, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode detection results")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return merr.ErrorOrNil()
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.File, r.Format)
		}
		return merr.ErrorOrNil()
	},
}

func init() {
	detectCmd.Flags().Bool("json", false, "Output as JSON")
}
