package pocketsmith

import (
	"net/http"
	"testing"
)

func TestListBudgetRollUp(t *testing.T) {
	tests := []struct {
		name     string
		rollUp   *bool
		expected string // "" means the parameter must be absent
	}{
		{"omitted", nil, ""},
		{"true", Bool(true), "1"},
		{"false", Bool(false), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, captured := testClient(t, http.StatusOK, `[]`)

			if _, err := client.ListBudget(123, tt.rollUp); err != nil {
				t.Fatalf("ListBudget() returned error: %v", err)
			}

			req := (*captured)[0]
			if req.Path != "/users/123/budget" {
				t.Errorf("path = %s, expected /users/123/budget", req.Path)
			}
			if tt.expected == "" {
				if req.Query.Has("roll_up") {
					t.Errorf("roll_up present (%q), expected it omitted", req.Query.Get("roll_up"))
				}
			} else if got := req.Query.Get("roll_up"); got != tt.expected {
				t.Errorf("roll_up = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestGetBudgetSummary(t *testing.T) {
	client, captured := testClient(t, http.StatusOK, `{"income": {}, "expense": {}}`)

	_, err := client.GetBudgetSummary(123, BudgetPeriod{
		Period:    "months",
		Interval:  1,
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})
	if err != nil {
		t.Fatalf("GetBudgetSummary() returned error: %v", err)
	}

	req := (*captured)[0]
	if req.Path != "/users/123/budget_summary" {
		t.Errorf("path = %s, expected /users/123/budget_summary", req.Path)
	}
	expected := map[string]string{
		"period":     "months",
		"interval":   "1",
		"start_date": "2024-01-01",
		"end_date":   "2024-12-31",
	}
	for key, want := range expected {
		if got := req.Query.Get(key); got != want {
			t.Errorf("query[%s] = %q, expected %q", key, got, want)
		}
	}
}

func TestGetTrendAnalysis(t *testing.T) {
	client, captured := testClient(t, http.StatusOK, `[]`)

	period := BudgetPeriod{Period: "weeks", Interval: 2, StartDate: "2024-01-01", EndDate: "2024-06-30"}
	_, err := client.GetTrendAnalysis(123, period, String("1,2,3"), String("4,5"))
	if err != nil {
		t.Fatalf("GetTrendAnalysis() returned error: %v", err)
	}

	req := (*captured)[0]
	if req.Path != "/users/123/trend_analysis" {
		t.Errorf("path = %s, expected /users/123/trend_analysis", req.Path)
	}
	if got := req.Query.Get("categories"); got != "1,2,3" {
		t.Errorf("categories = %q, expected %q", got, "1,2,3")
	}
	if got := req.Query.Get("scenarios"); got != "4,5" {
		t.Errorf("scenarios = %q, expected %q", got, "4,5")
	}
}

func TestGetTrendAnalysisOmitsOptionalLists(t *testing.T) {
	client, captured := testClient(t, http.StatusOK, `[]`)

	period := BudgetPeriod{Period: "months", Interval: 1, StartDate: "2024-01-01", EndDate: "2024-12-31"}
	if _, err := client.GetTrendAnalysis(123, period, nil, nil); err != nil {
		t.Fatalf("GetTrendAnalysis() returned error: %v", err)
	}

	query := (*captured)[0].Query
	if query.Has("categories") || query.Has("scenarios") {
		t.Errorf("optional lists present in %v, expected them omitted", query)
	}
}

func TestDeleteForecastCache(t *testing.T) {
	client, captured := testClient(t, http.StatusNoContent, "")
	t.Setenv(AllowWritesEnv, "true")

	if err := client.DeleteForecastCache(123); err != nil {
		t.Fatalf("DeleteForecastCache() returned error: %v", err)
	}

	req := (*captured)[0]
	if req.Method != http.MethodDelete || req.Path != "/users/123/forecast_cache" {
		t.Errorf("request = %s %s, expected DELETE /users/123/forecast_cache", req.Method, req.Path)
	}
}

func TestListLabels(t *testing.T) {
	client, captured := testClient(t, http.StatusOK, `["tag1", "tag2", "tag3"]`)

	result, err := client.ListLabels(123)
	if err != nil {
		t.Fatalf("ListLabels() returned error: %v", err)
	}
	if string(result) != `["tag1", "tag2", "tag3"]` {
		t.Errorf("ListLabels() = %s, expected the raw array", result)
	}
	if got := (*captured)[0].Path; got != "/users/123/labels" {
		t.Errorf("path = %s, expected /users/123/labels", got)
	}
}
