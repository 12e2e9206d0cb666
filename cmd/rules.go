package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/rule"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Lists rules",
	Long:  `Lists every rule with its description and parameters, then the known note names.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, r := range rule.All() {
			fmt.Fprintf(out, "%-28s %s (params: %s)\n", r.Name, r.Description, strings.Join(r.Params, ", "))
		}
		fmt.Fprintf(out, "\nnotes: %s\n", strings.Join(pitch.Names(), " "))
	},
}
