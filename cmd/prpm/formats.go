package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported editor formats",
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-10s %-6s %-7s %s\n", "FORMAT", "PARSE", "CONVERT", "EXTENSION")
		for _, eco := range ecosystems {
			fmt.Fprintf(w, "%-10s %-6s %-7s %s\n",
				eco.Format, yesNo(eco.Parse != nil), yesNo(eco.Convert), eco.Extension)
		}
	},
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
