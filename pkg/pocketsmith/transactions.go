package pocketsmith

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// TransactionFilter narrows a transaction listing. Nil fields are omitted
// from the query string; any subset may be combined.
type TransactionFilter struct {
	StartDate     *string // YYYY-MM-DD
	EndDate       *string // YYYY-MM-DD
	UpdatedSince  *string
	Uncategorised *bool
	Type          *string // "debit" or "credit"
	NeedsReview   *bool
	Search        *string
	Page          *int
}

func (f *TransactionFilter) values() url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	setString(params, "start_date", f.StartDate)
	setString(params, "end_date", f.EndDate)
	setString(params, "updated_since", f.UpdatedSince)
	setBool(params, "uncategorised", f.Uncategorised)
	setString(params, "type", f.Type)
	setBool(params, "needs_review", f.NeedsReview)
	setString(params, "search", f.Search)
	setInt(params, "page", f.Page)
	return params
}

// TransactionUpdate holds the fields of a transaction update. Only set
// fields are sent.
type TransactionUpdate struct {
	Memo         Optional[string]
	ChequeNumber Optional[string]
	Payee        Optional[string]
	Amount       Optional[float64]
	Date         Optional[string] // YYYY-MM-DD
	IsTransfer   Optional[bool]
	CategoryID   Optional[int]
	Note         Optional[string]
	NeedsReview  Optional[bool]
	Labels       Optional[[]string]
}

func (u TransactionUpdate) payload() map[string]any {
	body := map[string]any{}
	u.Memo.addTo(body, "memo")
	u.ChequeNumber.addTo(body, "cheque_number")
	u.Payee.addTo(body, "payee")
	u.Amount.addTo(body, "amount")
	u.Date.addTo(body, "date")
	u.IsTransfer.addTo(body, "is_transfer")
	u.CategoryID.addTo(body, "category_id")
	u.Note.addTo(body, "note")
	u.NeedsReview.addTo(body, "needs_review")
	u.Labels.addTo(body, "labels")
	return body
}

// NewTransaction holds the fields of a transaction creation request. Payee,
// Amount and Date are required by the API; the rest are optional.
type NewTransaction struct {
	Payee        string
	Amount       float64 // signed, negative for debits
	Date         string  // YYYY-MM-DD
	IsTransfer   Optional[bool]
	Labels       Optional[[]string]
	CategoryID   Optional[int]
	Note         Optional[string]
	Memo         Optional[string]
	ChequeNumber Optional[string]
	NeedsReview  Optional[bool]
}

func (t NewTransaction) payload() map[string]any {
	body := map[string]any{
		"payee":  t.Payee,
		"amount": t.Amount,
		"date":   t.Date,
	}
	t.IsTransfer.addTo(body, "is_transfer")
	t.Labels.addTo(body, "labels")
	t.CategoryID.addTo(body, "category_id")
	t.Note.addTo(body, "note")
	t.Memo.addTo(body, "memo")
	t.ChequeNumber.addTo(body, "cheque_number")
	t.NeedsReview.addTo(body, "needs_review")
	return body
}

// GetTransaction returns a single transaction by ID.
func (c *Client) GetTransaction(transactionID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/transactions/%d", transactionID), nil)
}

// UpdateTransaction updates a transaction.
func (c *Client) UpdateTransaction(transactionID int, update TransactionUpdate) (json.RawMessage, error) {
	if err := requireWrites(); err != nil {
		return nil, err
	}
	return c.put(fmt.Sprintf("/transactions/%d", transactionID), update.payload())
}

// DeleteTransaction deletes a transaction.
func (c *Client) DeleteTransaction(transactionID int) error {
	if err := requireWrites(); err != nil {
		return err
	}
	_, err := c.delete(fmt.Sprintf("/transactions/%d", transactionID))
	return err
}

// CreateTransaction creates a transaction in a transaction account.
func (c *Client) CreateTransaction(transactionAccountID int, txn NewTransaction) (json.RawMessage, error) {
	if err := requireWrites(); err != nil {
		return nil, err
	}
	return c.post(fmt.Sprintf("/transaction_accounts/%d/transactions", transactionAccountID), txn.payload())
}

// ListUserTransactions lists transactions for a user.
func (c *Client) ListUserTransactions(userID int, filter *TransactionFilter) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/users/%d/transactions", userID), filter.values())
}

// ListAccountTransactions lists transactions for an account.
func (c *Client) ListAccountTransactions(accountID int, filter *TransactionFilter) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/accounts/%d/transactions", accountID), filter.values())
}

// ListCategoryTransactions lists transactions for one or more categories.
// categoryIDs is a pre-joined comma-separated ID list used as a path segment
// (e.g. "1,2,3").
func (c *Client) ListCategoryTransactions(categoryIDs string, filter *TransactionFilter) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/categories/%s/transactions", categoryIDs), filter.values())
}

// ListTransactionAccountTransactions lists transactions for a transaction
// account.
func (c *Client) ListTransactionAccountTransactions(transactionAccountID int, filter *TransactionFilter) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/transaction_accounts/%d/transactions", transactionAccountID), filter.values())
}
