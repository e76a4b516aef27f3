package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// NewRootCmd builds the combo command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "combo",
		Short: "Try the combo parsers against lines of input",
		Long: `combo runs one of the parsers from the combo library against each
line of input and prints what it consumed and what it left unconsumed.

Rules:
  expr     - sums of products of integers and parenthesized expressions
  term     - products of factors
  factor   - an integer or a parenthesized expression
  digits   - one or more digits
  letters  - one or more lowercase letters`,
		SilenceUsage: true,
	}

	root.AddCommand(newParseCmd(), newVersionCmd())
	return root
}

// Execute runs the command named on the command line.
func Execute() error {
	return NewRootCmd().Execute()
}
