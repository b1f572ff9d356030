package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a configuration file into the canonical document model",
	Long: `Parse a native configuration file and print its canonical
representation as JSON. Useful for inspecting what a conversion would see.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to read input")
		}

		pkg, err := parseContent(cmd, args[0], string(content))
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(pkg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode canonical package")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	},
}

func init() {
	parseCmd.Flags().String("from", "", "Source format (auto-detected when omitted)")
	parseCmd.Flags().String("id", "", "Package id")
	parseCmd.Flags().String("name", "", "Package name (defaults to the input file name)")
	parseCmd.Flags().String("pkg-version", "", "Package version")
	parseCmd.Flags().String("description", "", "Package description")
	parseCmd.Flags().String("author", "", "Package author")
	parseCmd.Flags().StringSlice("tags", nil, "Package tags")
}
