package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring/catalog"
	ierrors "github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/core/log"
	"github.com/msto63/istring/utils/stringx"
)

var (
	callNull    []int
	callLiteral bool
	callQuote   bool
	callDiff    bool
	callNoColor bool
)

var callCmd = &cobra.Command{
	Use:   "call <operation> [args...]",
	Short: "Invoke an operation",
	Long: `Invokes one operation with positional arguments. Operation names are
case-insensitive and aliases are accepted.

Examples:
  istring call trim "  bob  "
  istring call padLeft bat 5 yz
  istring call isEmpty --null 0
  istring call replaceAll --literal a.b.c . -
  istring call toCamelCase --diff foo-bar`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().IntSliceVar(&callNull, "null", nil, "pass argument N (0-based) as absent value, repeatable")
	callCmd.Flags().BoolVar(&callLiteral, "literal", false, "read patterns as literal text")
	callCmd.Flags().BoolVar(&callQuote, "quote", false, "print text results as JSON string literals")
	callCmd.Flags().BoolVar(&callDiff, "diff", false, "show the change from the first argument to the result")
	callCmd.Flags().BoolVar(&callNoColor, "no-color", false, "disable colored output")
}

func runCall(cmd *cobra.Command, args []string) error {
	name := args[0]

	callArgs, err := withAbsent(catalog.Args(args[1:]...), callNull)
	if err != nil {
		return err
	}

	mode := settings.MatchMode()
	if callLiteral {
		mode = stringx.MatchLiteral
	}

	reg, err := newCatalog()
	if err != nil {
		return err
	}

	res, err := reg.Invoke(name, catalog.Call{
		Args:    callArgs,
		Mode:    mode,
		Missing: &settings.Format.Missing,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := newRenderer(out, callQuote, !callNoColor)

	if callDiff {
		if res.Kind == catalog.KindText && len(callArgs) > 0 && callArgs[0] != nil {
			fmt.Fprintln(out, r.Diff(*callArgs[0], res.Text))
			return nil
		}
		logger.Warn("diff needs a text result and a present first argument", log.Fields{
			"operation": name,
			"result":    res.Kind.String(),
		})
	}

	fmt.Fprintln(out, r.Result(res))
	return nil
}

// withAbsent replaces the arguments at the given indexes with absent
// values, growing args when an index lies past its end.
func withAbsent(args []*string, indexes []int) ([]*string, error) {
	for _, n := range indexes {
		if n < 0 {
			return nil, ierrors.InvalidInput("cli", "call", n, "a non-negative argument index")
		}
		for len(args) <= n {
			args = append(args, nil)
		}
		args[n] = nil
	}
	return args, nil
}
