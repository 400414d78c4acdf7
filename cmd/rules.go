package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/proofdev/fitch/proof"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the inference rules the engine can cite",
	Run: func(cmd *cobra.Command, args []string) {
		for _, rule := range proof.Rules {
			fmt.Printf("%s  %s\n", color.CyanString("%-3s", rule.Name), rule.Describe)
		}
	},
}
