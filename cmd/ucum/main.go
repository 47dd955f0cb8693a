package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ucum-go/ucum/pkg/ucum"
)

var version = "dev"

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ucum",
		Short: "UCUM - Unified Code for Units of Measure toolkit for Go",
		Long: `ucum parses, validates, and converts between UCUM unit expressions.

It provides:
  - Grammar-level validation of UCUM unit expressions
  - Conversion between dimensionally compatible units
  - Canonical dimension/factor analysis of an expression
  - Lookup of registered unit and prefix codes`,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newAnalyseCmd())
	rootCmd.AddCommand(newComparableCmd())
	rootCmd.AddCommand(newFindUnitCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ucum version %s\n", version)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [expression]",
		Short: "Validate a UCUM unit expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ucum.Validate(args[0]); err != nil {
				return err
			}
			fmt.Println("valid")
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Convert a value between two unit expressions",
		Long: `Convert a value between two unit expressions.

Example:
  ucum convert 98.6 --from "[degF]" --to "Cel"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			result, err := ucum.Convert(value, from, to)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s = %s %s\n", args[0], from, strconv.FormatFloat(result, 'g', -1, 64), to)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source unit expression")
	cmd.Flags().StringVar(&to, "to", "", "target unit expression")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func newAnalyseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "analyse [expression]",
		Short: "Describe the canonical form of a unit expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := ucum.Analyse(args[0])
			if err != nil {
				return err
			}
			if outputFormat == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}
			fmt.Printf("expression:      %s\n", a.Expression)
			fmt.Printf("factor:          %v\n", a.Factor)
			fmt.Printf("offset:          %v\n", a.Offset)
			fmt.Printf("dimension:       %s\n", a.Dimension)
			fmt.Printf("dimensionless:   %v\n", a.IsDimensionless)
			fmt.Printf("has offset:      %v\n", a.HasOffset)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json)")

	return cmd
}

func newComparableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comparable [a] [b]",
		Short: "Report whether two unit expressions share a dimension",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := ucum.IsComparable(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
}

func newFindUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-unit [code]",
		Short: "Look up a registered unit code",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			u, ok := ucum.FindUnit(args[0])
			if !ok {
				return fmt.Errorf("unit %q is not a registered code (it may still be valid as a prefixed or compound expression)", args[0])
			}
			fmt.Printf("code:    %s\n", u.Code)
			fmt.Printf("name:    %s\n", u.Name)
			fmt.Printf("dim:     %s\n", u.Dim)
			fmt.Printf("factor:  %v\n", u.Factor)
			fmt.Printf("offset:  %v\n", u.Offset)
			fmt.Printf("special: %s\n", u.Special)
			fmt.Printf("metric:  %v\n", u.Metric)
			return nil
		},
	}
}
