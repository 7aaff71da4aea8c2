package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/func-grapher/internal/expr"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the functions and constants an expression may use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "variable:  %s\n", expr.VarName)
		fmt.Fprintf(out, "functions: %s\n", strings.Join(expr.Functions(), " "))
		fmt.Fprintf(out, "constants: %s\n", strings.Join(expr.Constants(), " "))
		fmt.Fprintf(out, "operators: %s\n", "+ - * / % ^ ** ( )")
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
