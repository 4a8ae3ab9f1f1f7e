package pocketsmith

import (
	"net/http"
	"reflect"
	"testing"
)

func TestUpdateTransactionSendsOnlySetFields(t *testing.T) {
	client, captured := testClient(t, http.StatusOK, `{"id": 123}`)
	t.Setenv(AllowWritesEnv, "true")

	_, err := client.UpdateTransaction(123, TransactionUpdate{
		Payee: Some("New Payee"),
	})
	if err != nil {
		t.Fatalf("UpdateTransaction() returned error: %v", err)
	}

	req := (*captured)[0]
	if req.Method != http.MethodPut || req.Path != "/transactions/123" {
		t.Errorf("request = %s %s, expected PUT /transactions/123", req.Method, req.Path)
	}

	body := decodeBody(t, req.Body)
	expected := map[string]any{"payee": "New Payee"}
	if !reflect.DeepEqual(body, expected) {
		t.Errorf("body = %v, expected exactly %v", body, expected)
	}
}

func TestUpdateTransactionAllFields(t *testing.T) {
	client, captured := testClient(t, http.StatusOK, `{"id": 123}`)
	t.Setenv(AllowWritesEnv, "true")

	_, err := client.UpdateTransaction(123, TransactionUpdate{
		Memo:         Some("Test memo"),
		ChequeNumber: Some("12345"),
		Payee:        Some("New Payee"),
		Amount:       Some(-100.0),
		Date:         Some("2024-01-15"),
		IsTransfer:   Some(true),
		CategoryID:   Some(456),
		Note:         Some("Test note"),
		NeedsReview:  Some(false),
		Labels:       Some([]string{"tag1", "tag2"}),
	})
	if err != nil {
		t.Fatalf("UpdateTransaction() returned error: %v", err)
	}

	body := decodeBody(t, (*captured)[0].Body)
	expected := map[string]any{
		"memo":          "Test memo",
		"cheque_number": "12345",
		"payee":         "New Payee",
		"amount":        -100.0,
		"date":          "2024-01-15",
		"is_transfer":   true,
		"category_id":   456.0,
		"note":          "Test note",
		"needs_review":  false,
		"labels":        []any{"tag1", "tag2"},
	}
	if !reflect.DeepEqual(body, expected) {
		t.Errorf("body = %v, expected %v", body, expected)
	}
}

func TestListUserTransactionsFilters(t *testing.T) {
	tests := []struct {
		name     string
		filter   *TransactionFilter
		expected map[string]string
	}{
		{
			name:     "no filter",
			filter:   nil,
			expected: map[string]string{},
		},
		{
			name: "boolean filters serialize as 1 and 0",
			filter: &TransactionFilter{
				Uncategorised: Bool(true),
				NeedsReview:   Bool(false),
			},
			expected: map[string]string{"uncategorised": "1", "needs_review": "0"},
		},
		{
			name: "all filters",
			filter: &TransactionFilter{
				StartDate:     String("2024-01-01"),
				EndDate:       String("2024-12-31"),
				UpdatedSince:  String("2024-01-01T00:00:00"),
				Uncategorised: Bool(true),
				Type:          String("debit"),
				NeedsReview:   Bool(true),
				Search:        String("coffee"),
				Page:          Int(2),
			},
			expected: map[string]string{
				"start_date":    "2024-01-01",
				"end_date":      "2024-12-31",
				"updated_since": "2024-01-01T00:00:00",
				"uncategorised": "1",
				"type":          "debit",
				"needs_review":  "1",
				"search":        "coffee",
				"page":          "2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, captured := testClient(t, http.StatusOK, `[]`)

			if _, err := client.ListUserTransactions(456, tt.filter); err != nil {
				t.Fatalf("ListUserTransactions() returned error: %v", err)
			}

			req := (*captured)[0]
			if req.Path != "/users/456/transactions" {
				t.Errorf("path = %s, expected /users/456/transactions", req.Path)
			}
			if len(req.Query) != len(tt.expected) {
				t.Errorf("query has %d keys, expected %d (%v)", len(req.Query), len(tt.expected), req.Query)
			}
			for key, want := range tt.expected {
				if got := req.Query.Get(key); got != want {
					t.Errorf("query[%s] = %q, expected %q", key, got, want)
				}
			}
		})
	}
}

func TestTransactionListingPaths(t *testing.T) {
	tests := []struct {
		name string
		call func(*Client) error
		path string
	}{
		{
			name: "by account",
			call: func(c *Client) error { _, err := c.ListAccountTransactions(789, nil); return err },
			path: "/accounts/789/transactions",
		},
		{
			name: "by category IDs",
			call: func(c *Client) error { _, err := c.ListCategoryTransactions("1,2,3", nil); return err },
			path: "/categories/1,2,3/transactions",
		},
		{
			name: "by transaction account",
			call: func(c *Client) error { _, err := c.ListTransactionAccountTransactions(999, nil); return err },
			path: "/transaction_accounts/999/transactions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, captured := testClient(t, http.StatusOK, `[]`)

			if err := tt.call(client); err != nil {
				t.Fatalf("listing returned error: %v", err)
			}
			if got := (*captured)[0].Path; got != tt.path {
				t.Errorf("path = %s, expected %s", got, tt.path)
			}
		})
	}
}

func TestCreateTransactionRequiredFieldsOnly(t *testing.T) {
	client, captured := testClient(t, http.StatusCreated, `{"id": 123}`)
	t.Setenv(AllowWritesEnv, "true")

	_, err := client.CreateTransaction(456, NewTransaction{
		Payee:  "Test Store",
		Amount: -50.0,
		Date:   "2024-01-15",
	})
	if err != nil {
		t.Fatalf("CreateTransaction() returned error: %v", err)
	}

	req := (*captured)[0]
	if req.Method != http.MethodPost || req.Path != "/transaction_accounts/456/transactions" {
		t.Errorf("request = %s %s, expected POST /transaction_accounts/456/transactions", req.Method, req.Path)
	}

	body := decodeBody(t, req.Body)
	expected := map[string]any{
		"payee":  "Test Store",
		"amount": -50.0,
		"date":   "2024-01-15",
	}
	if !reflect.DeepEqual(body, expected) {
		t.Errorf("body = %v, expected exactly %v", body, expected)
	}
}

func TestCreateTransactionLabelsAsArray(t *testing.T) {
	client, captured := testClient(t, http.StatusCreated, `{"id": 123}`)
	t.Setenv(AllowWritesEnv, "true")

	_, err := client.CreateTransaction(456, NewTransaction{
		Payee:  "Test Store",
		Amount: -50.0,
		Date:   "2024-01-15",
		Labels: Some([]string{"tag1", "tag2"}),
	})
	if err != nil {
		t.Fatalf("CreateTransaction() returned error: %v", err)
	}

	body := decodeBody(t, (*captured)[0].Body)
	labels, ok := body["labels"].([]any)
	if !ok {
		t.Fatalf("labels = %T(%v), expected a JSON array", body["labels"], body["labels"])
	}
	if !reflect.DeepEqual(labels, []any{"tag1", "tag2"}) {
		t.Errorf("labels = %v, expected [tag1 tag2]", labels)
	}
}
