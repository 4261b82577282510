package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/dafibh/karja/karja-backend/internal/service"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	file     string
	income   float64
	asOf     string
	timeline bool
}

func newProjectCommand() *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Summarize a debt file",
		Example: `  karja project --file debts.toml
  karja project --file debts.toml --income 4200 --as-of 2025-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProject(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML file listing the debts")
	cmd.Flags().Float64Var(&opts.income, "income", 0, "Monthly income (overrides the file and DEFAULT_MONTHLY_INCOME)")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Reference date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&opts.timeline, "timeline", false, "Print every month of the balance projection")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runProject(w io.Writer, opts *projectOptions) error {
	now, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}

	file, err := LoadDebtFile(opts.file)
	if err != nil {
		return err
	}

	income := opts.income
	if income == 0 {
		income = file.MonthlyIncome
	}
	if income == 0 {
		if income, err = defaultIncome(); err != nil {
			return err
		}
	}

	calc := service.NewCalculatorService(func() time.Time { return now })
	inputs, err := file.Inputs()
	if err != nil {
		return err
	}

	snapshot, err := calc.Summarize(inputs, income)
	if err != nil {
		return describeInputError(err, file)
	}
	summary := snapshot.Summary

	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderTitle(fmt.Sprintf("DEBT SUMMARY  as of %s", now.Format("2 January 2006"))))
	fmt.Fprintln(w)

	if snapshot.DebtCount == 0 {
		fmt.Fprintln(w, RenderNote("No debts listed. Nothing to pay off."))
		return nil
	}

	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Debts", fmt.Sprintf("%d", snapshot.DebtCount)},
			{"Total Debt", FormatMoney(summary.TotalDebt)},
			{"Monthly Payments", FormatMoney(summary.MonthlyPayments)},
			{"Monthly Income", FormatMoney(snapshot.MonthlyIncome)},
			{"Payment/Income", FormatPercent(summary.PaymentToIncomeRatio)},
			{"Risk", RenderRisk(snapshot.RiskLevel)},
			{"---"},
			{"Debt-Free Date", summary.DebtFreeDate},
			{"Time to Payoff", FormatMonths(summary.DebtFreeMonths)},
			{"Remaining Payments", FormatMoney(summary.TotalRemainingPayments)},
			{"Future Interest", FormatMoney(summary.FutureInterest)},
			{"Interest YTD (est)", FormatMoney(summary.InterestPaidYTD)},
		},
	}))
	fmt.Fprintln(w)

	debtRows := make([][]string, 0, len(inputs))
	for _, in := range inputs {
		estimate, err := calc.EstimatePayoff(in)
		if err != nil {
			return err
		}
		name := in.Name
		if name == "" {
			name = "Debt"
		}
		debtRows = append(debtRows, []string{
			name,
			FormatMoney(in.Amount.InexactFloat64()),
			in.InterestRate.StringFixed(2) + "%",
			FormatMoney(in.MinimumPayment.InexactFloat64()),
			FormatMonths(estimate.Months),
			estimate.PayoffDate,
		})
	}
	fmt.Fprint(w, RenderTable(Table{
		Title:   "Debts",
		Headers: []string{"Name", "Balance", "Rate", "Payment", "Payoff In", "Paid Off"},
		Rows:    debtRows,
	}))
	fmt.Fprintln(w)

	typeRows := make([][]string, 0, len(summary.DebtByType))
	for _, g := range summary.DebtByType {
		typeRows = append(typeRows, []string{g.Name, FormatMoney(g.Value), FormatPercent(g.Value / summary.TotalDebt)})
	}
	fmt.Fprint(w, RenderTable(Table{
		Title:   "By Type",
		Headers: []string{"Type", "Balance", "Share"},
		Rows:    typeRows,
	}))
	fmt.Fprintln(w)

	renderTimeline(w, summary.PaymentTimeline, opts.timeline)

	if summary.IsDebtFreeNever() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderNote("At least one payment does not cover its interest, so that balance never reaches zero."))
	}
	return nil
}

// renderTimeline prints the projected balance, every month when full is set
// and once a year otherwise
func renderTimeline(w io.Writer, timeline []domain.TimelinePoint, full bool) {
	balances := make([]float64, len(timeline))
	for i, p := range timeline {
		balances[i] = p.ProjectedBalance
	}

	rows := make([][]string, 0)
	for i, p := range timeline {
		last := i == len(timeline)-1
		if full || i%12 == 0 || last {
			rows = append(rows, []string{p.Month, FormatMoney(p.ProjectedBalance)})
		}
	}

	fmt.Fprint(w, RenderTable(Table{
		Title:   "Projected Balance  " + RenderSparkline(balances),
		Headers: []string{"Month", "Balance"},
		Rows:    rows,
	}))
}

// describeInputError points a validation failure at the debt in the file
func describeInputError(err error, file *DebtFile) error {
	var inputErr *service.DebtInputError
	if errors.As(err, &inputErr) {
		return fmt.Errorf("%s: %w", file.debtLabel(inputErr.Index), inputErr.Err)
	}
	if errors.Is(err, domain.ErrIncomeInvalid) {
		return fmt.Errorf("monthly income must be greater than 0")
	}
	return err
}
