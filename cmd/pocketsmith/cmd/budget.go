package cmd

import (
	"github.com/lextoumbourou/pocketsmith-skill/pkg/pocketsmith"
	"github.com/spf13/cobra"
)

// budgetPeriodFlags holds the required range parameters shared by the
// summary and trend commands.
type budgetPeriodFlags struct {
	period    string
	interval  int
	startDate string
	endDate   string
}

func (f *budgetPeriodFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.period, "period", "", "period unit: weeks, months or years (required)")
	fl.IntVar(&f.interval, "interval", 0, "number of period units per interval (required)")
	fl.StringVar(&f.startDate, "start-date", "", "start date YYYY-MM-DD (required)")
	fl.StringVar(&f.endDate, "end-date", "", "end date YYYY-MM-DD (required)")

	cmd.MarkFlagRequired("period")
	cmd.MarkFlagRequired("interval")
	cmd.MarkFlagRequired("start-date")
	cmd.MarkFlagRequired("end-date")
}

func (f *budgetPeriodFlags) value() pocketsmith.BudgetPeriod {
	return pocketsmith.BudgetPeriod{
		Period:    f.period,
		Interval:  f.interval,
		StartDate: f.startDate,
		EndDate:   f.endDate,
	}
}

func newBudgetCmd(opts *rootOptions) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget commands",
	}

	budgetCmd.AddCommand(newBudgetListCmd(opts))
	budgetCmd.AddCommand(newBudgetSummaryCmd(opts))
	budgetCmd.AddCommand(newBudgetTrendCmd(opts))
	budgetCmd.AddCommand(newBudgetRefreshCmd(opts))

	return budgetCmd
}

func newBudgetListCmd(opts *rootOptions) *cobra.Command {
	var rollUp bool

	cmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List budget analysis for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user ID")
			if err != nil {
				return err
			}

			var rollUpParam *bool
			if cmd.Flags().Changed("roll-up") {
				rollUpParam = pocketsmith.Bool(rollUp)
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.ListBudget(id, rollUpParam)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&rollUp, "roll-up", false, "roll child category budgets up into their parents")
	return cmd
}

func newBudgetSummaryCmd(opts *rootOptions) *cobra.Command {
	period := &budgetPeriodFlags{}

	cmd := &cobra.Command{
		Use:   "summary <user-id>",
		Short: "Get budget totals for a user over a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.GetBudgetSummary(id, period.value())
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	period.register(cmd)
	return cmd
}

func newBudgetTrendCmd(opts *rootOptions) *cobra.Command {
	period := &budgetPeriodFlags{}
	var categories, scenarios string

	cmd := &cobra.Command{
		Use:   "trend <user-id>",
		Short: "Get trend analysis for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user ID")
			if err != nil {
				return err
			}

			var categoriesParam, scenariosParam *string
			if cmd.Flags().Changed("categories") {
				categoriesParam = pocketsmith.String(categories)
			}
			if cmd.Flags().Changed("scenarios") {
				scenariosParam = pocketsmith.String(scenarios)
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.GetTrendAnalysis(id, period.value(), categoriesParam, scenariosParam)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	period.register(cmd)
	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated category IDs")
	cmd.Flags().StringVar(&scenarios, "scenarios", "", "comma-separated scenario IDs")
	return cmd
}

func newBudgetRefreshCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <user-id>",
		Short: "Invalidate a user's forecast cache (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			if err := client.DeleteForecastCache(id); err != nil {
				return err
			}

			return writeSuccess(cmd.OutOrStdout())
		},
	}
}
