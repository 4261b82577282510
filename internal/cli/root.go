package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/config"
	"github.com/spf13/cobra"
)

const asOfLayout = "2006-01-02"

// NewRootCommand builds the karja command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "karja",
		Short:         "Debt payoff projections",
		Long:          "Project when your debts will be paid off and what they will cost, without a server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newProjectCommand())
	root.AddCommand(newPayoffCommand())
	return root
}

// Execute is the main entry point called from cmd/karja
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		os.Exit(1)
	}
}

// parseAsOf parses the --as-of flag, defaulting to today
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(asOfLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--as-of must look like %s", asOfLayout)
	}
	return t, nil
}

// defaultIncome returns the income assumed when neither the flag nor the
// debt file sets one
func defaultIncome() (float64, error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return 0, err
	}
	return cfg.DefaultMonthlyIncome, nil
}
