package cmd

import (
	"encoding/json"
	"strings"

	"github.com/lextoumbourou/pocketsmith-skill/pkg/pocketsmith"
	"github.com/spf13/cobra"
)

// transactionFilterFlags holds the shared listing filters. The boolean
// flags are always forwarded (an unset flag sends 0), matching the
// behaviour of plain on/off CLI switches; the other filters are only sent
// when given.
type transactionFilterFlags struct {
	startDate     string
	endDate       string
	updatedSince  string
	txnType       string
	search        string
	uncategorised bool
	needsReview   bool
	page          int
}

func (f *transactionFilterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.startDate, "start-date", "", "start date filter (YYYY-MM-DD)")
	fl.StringVar(&f.endDate, "end-date", "", "end date filter (YYYY-MM-DD)")
	fl.StringVar(&f.updatedSince, "updated-since", "", "only transactions updated since this datetime")
	fl.StringVar(&f.txnType, "type", "", "filter by type (debit or credit)")
	fl.StringVar(&f.search, "search", "", "search term for payee/memo")
	fl.BoolVar(&f.uncategorised, "uncategorised", false, "only uncategorised transactions")
	fl.BoolVar(&f.needsReview, "needs-review", false, "only transactions needing review")
	fl.IntVar(&f.page, "page", 0, "page number for pagination")
}

func (f *transactionFilterFlags) filter(cmd *cobra.Command) *pocketsmith.TransactionFilter {
	flt := &pocketsmith.TransactionFilter{
		Uncategorised: pocketsmith.Bool(f.uncategorised),
		NeedsReview:   pocketsmith.Bool(f.needsReview),
	}
	flags := cmd.Flags()
	if flags.Changed("start-date") {
		flt.StartDate = pocketsmith.String(f.startDate)
	}
	if flags.Changed("end-date") {
		flt.EndDate = pocketsmith.String(f.endDate)
	}
	if flags.Changed("updated-since") {
		flt.UpdatedSince = pocketsmith.String(f.updatedSince)
	}
	if flags.Changed("type") {
		flt.Type = pocketsmith.String(f.txnType)
	}
	if flags.Changed("search") {
		flt.Search = pocketsmith.String(f.search)
	}
	if flags.Changed("page") {
		flt.Page = pocketsmith.Int(f.page)
	}
	return flt
}

func newTransactionsCmd(opts *rootOptions) *cobra.Command {
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Transaction commands",
	}

	transactionsCmd.AddCommand(newTransactionsGetCmd(opts))
	transactionsCmd.AddCommand(newTransactionsListCmd(opts, "list-by-user", "user-id",
		"List transactions for a user",
		func(client *pocketsmith.Client, id int, f *pocketsmith.TransactionFilter) (json.RawMessage, error) {
			return client.ListUserTransactions(id, f)
		}))
	transactionsCmd.AddCommand(newTransactionsListCmd(opts, "list-by-account", "account-id",
		"List transactions for an account",
		func(client *pocketsmith.Client, id int, f *pocketsmith.TransactionFilter) (json.RawMessage, error) {
			return client.ListAccountTransactions(id, f)
		}))
	transactionsCmd.AddCommand(newTransactionsListCmd(opts, "list-by-transaction-account", "transaction-account-id",
		"List transactions for a transaction account",
		func(client *pocketsmith.Client, id int, f *pocketsmith.TransactionFilter) (json.RawMessage, error) {
			return client.ListTransactionAccountTransactions(id, f)
		}))
	transactionsCmd.AddCommand(newTransactionsListByCategoryCmd(opts))
	transactionsCmd.AddCommand(newTransactionsUpdateCmd(opts))
	transactionsCmd.AddCommand(newTransactionsDeleteCmd(opts))
	transactionsCmd.AddCommand(newTransactionsCreateCmd(opts))

	return transactionsCmd
}

func newTransactionsGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.GetTransaction(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

// newTransactionsListCmd builds one of the integer-scoped listing commands;
// they differ only in the path the ID lands in.
func newTransactionsListCmd(opts *rootOptions, use, idName, short string,
	list func(*pocketsmith.Client, int, *pocketsmith.TransactionFilter) (json.RawMessage, error)) *cobra.Command {

	filters := &transactionFilterFlags{}

	cmd := &cobra.Command{
		Use:   use + " <" + idName + ">",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], idName)
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := list(client, id, filters.filter(cmd))
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	filters.register(cmd)
	return cmd
}

func newTransactionsListByCategoryCmd(opts *rootOptions) *cobra.Command {
	filters := &transactionFilterFlags{}

	cmd := &cobra.Command{
		Use:   "list-by-category <category-ids>",
		Short: "List transactions for one or more categories (comma-separated IDs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.ListCategoryTransactions(args[0], filters.filter(cmd))
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	filters.register(cmd)
	return cmd
}

func newTransactionsUpdateCmd(opts *rootOptions) *cobra.Command {
	var (
		memo         string
		chequeNumber string
		payee        string
		amount       float64
		date         string
		isTransfer   bool
		categoryID   int
		note         string
		needsReview  bool
		labels       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction ID")
			if err != nil {
				return err
			}

			update := pocketsmith.TransactionUpdate{}
			flags := cmd.Flags()
			if flags.Changed("memo") {
				update.Memo = pocketsmith.Some(memo)
			}
			if flags.Changed("cheque-number") {
				update.ChequeNumber = pocketsmith.Some(chequeNumber)
			}
			if flags.Changed("payee") {
				update.Payee = pocketsmith.Some(payee)
			}
			if flags.Changed("amount") {
				update.Amount = pocketsmith.Some(amount)
			}
			if flags.Changed("date") {
				update.Date = pocketsmith.Some(date)
			}
			if flags.Changed("is-transfer") {
				update.IsTransfer = pocketsmith.Some(isTransfer)
			}
			if flags.Changed("category-id") {
				update.CategoryID = pocketsmith.Some(categoryID)
			}
			if flags.Changed("note") {
				update.Note = pocketsmith.Some(note)
			}
			if flags.Changed("needs-review") {
				update.NeedsReview = pocketsmith.Some(needsReview)
			}
			if flags.Changed("labels") {
				update.Labels = pocketsmith.Some(splitList(labels))
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.UpdateTransaction(id, update)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&memo, "memo", "", "bank memo/description")
	fl.StringVar(&chequeNumber, "cheque-number", "", "cheque number")
	fl.StringVar(&payee, "payee", "", "payee name")
	fl.Float64Var(&amount, "amount", 0, "signed amount (negative for debits)")
	fl.StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")
	fl.BoolVar(&isTransfer, "is-transfer", false, "whether this is a transfer")
	fl.IntVar(&categoryID, "category-id", 0, "category ID to assign")
	fl.StringVar(&note, "note", "", "user note")
	fl.BoolVar(&needsReview, "needs-review", false, "whether the transaction needs review")
	fl.StringVar(&labels, "labels", "", "comma-separated labels to assign")

	return cmd
}

func newTransactionsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			if err := client.DeleteTransaction(id); err != nil {
				return err
			}

			return writeSuccess(cmd.OutOrStdout())
		},
	}
}

func newTransactionsCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		payee        string
		amount       float64
		date         string
		isTransfer   bool
		labels       string
		categoryID   int
		note         string
		memo         string
		chequeNumber string
		needsReview  bool
	)

	cmd := &cobra.Command{
		Use:   "create <transaction-account-id>",
		Short: "Create a transaction in a transaction account (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction account ID")
			if err != nil {
				return err
			}

			txn := pocketsmith.NewTransaction{
				Payee:  payee,
				Amount: amount,
				Date:   date,
			}
			flags := cmd.Flags()
			if flags.Changed("is-transfer") {
				txn.IsTransfer = pocketsmith.Some(isTransfer)
			}
			if flags.Changed("labels") {
				txn.Labels = pocketsmith.Some(splitList(labels))
			}
			if flags.Changed("category-id") {
				txn.CategoryID = pocketsmith.Some(categoryID)
			}
			if flags.Changed("note") {
				txn.Note = pocketsmith.Some(note)
			}
			if flags.Changed("memo") {
				txn.Memo = pocketsmith.Some(memo)
			}
			if flags.Changed("cheque-number") {
				txn.ChequeNumber = pocketsmith.Some(chequeNumber)
			}
			if flags.Changed("needs-review") {
				txn.NeedsReview = pocketsmith.Some(needsReview)
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.CreateTransaction(id, txn)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&payee, "payee", "", "payee name (required)")
	fl.Float64Var(&amount, "amount", 0, "signed amount, negative for debits (required)")
	fl.StringVar(&date, "date", "", "transaction date YYYY-MM-DD (required)")
	fl.BoolVar(&isTransfer, "is-transfer", false, "whether this is a transfer")
	fl.StringVar(&labels, "labels", "", "comma-separated labels")
	fl.IntVar(&categoryID, "category-id", 0, "category ID")
	fl.StringVar(&note, "note", "", "user note")
	fl.StringVar(&memo, "memo", "", "bank memo")
	fl.StringVar(&chequeNumber, "cheque-number", "", "cheque number")
	fl.BoolVar(&needsReview, "needs-review", false, "whether the transaction needs review")

	cmd.MarkFlagRequired("payee")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("date")

	return cmd
}

// splitList turns a comma-separated flag value into the JSON array the API
// expects for list-valued body fields.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
