package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/spf13/cobra"
)

type payoffOptions struct {
	amount  float64
	rate    float64
	payment float64
	asOf    string
}

func newPayoffCommand() *cobra.Command {
	opts := &payoffOptions{}

	cmd := &cobra.Command{
		Use:     "payoff",
		Short:   "Estimate the payoff of a single debt",
		Example: "  karja payoff --amount 5000 --rate 20 --payment 200",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPayoff(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.amount, "amount", 0, "Outstanding balance")
	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().Float64Var(&opts.payment, "payment", 0, "Monthly payment")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Reference date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("payment")

	return cmd
}

func runPayoff(w io.Writer, opts *payoffOptions) error {
	now, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}

	amount, err := finiteDecimal("--amount", opts.amount)
	if err != nil {
		return err
	}
	rate, err := finiteDecimal("--rate", opts.rate)
	if err != nil {
		return err
	}
	payment, err := finiteDecimal("--payment", opts.payment)
	if err != nil {
		return err
	}

	calc := service.NewCalculatorService(func() time.Time { return now })
	estimate, err := calc.EstimatePayoff(service.CalculatorDebtInput{
		Amount:         amount,
		InterestRate:   rate,
		MinimumPayment: payment,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderTitle(fmt.Sprintf("PAYOFF  %s at %.2f%%", FormatMoney(opts.amount), opts.rate)))
	fmt.Fprintln(w)

	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Monthly Payment", FormatMoney(opts.payment)},
			{"Monthly Interest", FormatMoney(estimate.MonthlyInterest)},
			{"---"},
			{"Time to Payoff", FormatMonths(estimate.Months)},
			{"Paid Off", estimate.PayoffDate},
			{"Total Payments", FormatMoney(estimate.TotalPayments)},
			{"Future Interest", FormatMoney(estimate.FutureInterest)},
		},
	}))

	if estimate.NonAmortizing {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderNote(fmt.Sprintf("A payment of %s does not cover the %s monthly interest.",
			FormatMoney(opts.payment), FormatMoney(estimate.MonthlyInterest))))
	}
	return nil
}
