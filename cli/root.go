// Package cli wires the command line front end.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"compound-interest/domain"
	"compound-interest/output"
	"compound-interest/service"
)

const usageHint = "`cis --help` for usage"

type projectionFlags struct {
	params   domain.InvestmentParams
	json     bool
	table    bool
	output   string
	maxYears int
}

// NewRootCommand builds the cis command tree.
func NewRootCommand() *cobra.Command {
	flags := projectionFlags{params: domain.DefaultCLIParams()}

	cmd := &cobra.Command{
		Use:   "cis",
		Short: "cis - Calculates Compound Interest.",
		Long: "cis - Calculates Compound Interest.\n" +
			"Output the results of compound interest calculations as either a line graph image or JSON.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usageHint)
				return nil
			}
			return runProjection(cmd.OutOrStdout(), flags)
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&flags.params.Principal, "principal", "p", domain.DefaultPrincipal,
		"The principal at the time you started investing")
	f.Float64VarP(&flags.params.Contribution, "contribution", "c", domain.DefaultContribution,
		"The monthly contribution amount")
	f.Float64VarP(&flags.params.Rate, "rate", "r", domain.DefaultRate,
		"The annual interest rate (in %)")
	f.IntVarP(&flags.params.Years, "years", "y", domain.DefaultCLIYears,
		"The number of years for contributions")
	f.BoolVarP(&flags.json, "json", "j", false, "Output as JSON")
	f.BoolVarP(&flags.table, "table", "t", false, "Output as a text table")
	f.StringVarP(&flags.output, "output", "o", output.DefaultChartFile, "Chart image file")
	f.IntVar(&flags.maxYears, "max-years", service.DefaultMaxYears, "Largest accepted number of years, 0 for no limit")
	cmd.MarkFlagsMutuallyExclusive("json", "table")

	cmd.AddCommand(newServerCommand())

	return cmd
}

func runProjection(out io.Writer, flags projectionFlags) error {
	investment, err := flags.params.Investment()
	if err != nil {
		return err
	}
	if err := service.CheckYears(investment, flags.maxYears); err != nil {
		return err
	}

	summary := service.YearlySummary(investment)

	switch {
	case flags.json:
		return output.WriteJSON(out, summary)
	case flags.table:
		return output.WriteTable(out, summary)
	}

	if err := output.RenderChart(summary, flags.output); err != nil {
		return err
	}
	fmt.Fprintf(out, "Chart written to %s\n", flags.output)
	return nil
}

// Execute runs the command line with args and reports any error on stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
