package pocketsmith

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// BudgetPeriod holds the required range parameters for budget summary and
// trend analysis requests.
type BudgetPeriod struct {
	Period    string // "weeks", "months" or "years"
	Interval  int
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

func (p BudgetPeriod) values() url.Values {
	params := url.Values{}
	params.Set("period", p.Period)
	params.Set("interval", strconv.Itoa(p.Interval))
	params.Set("start_date", p.StartDate)
	params.Set("end_date", p.EndDate)
	return params
}

// ListBudget lists budget analysis for a user. rollUp controls whether
// parent categories include their children's budgets; nil omits the
// parameter.
func (c *Client) ListBudget(userID int, rollUp *bool) (json.RawMessage, error) {
	params := url.Values{}
	setBool(params, "roll_up", rollUp)
	return c.get(fmt.Sprintf("/users/%d/budget", userID), params)
}

// GetBudgetSummary returns budget totals for a user over the given period.
func (c *Client) GetBudgetSummary(userID int, period BudgetPeriod) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/users/%d/budget_summary", userID), period.values())
}

// GetTrendAnalysis returns trend analysis for a user. categories and
// scenarios are pre-joined comma-separated ID lists; nil omits them.
func (c *Client) GetTrendAnalysis(userID int, period BudgetPeriod, categories, scenarios *string) (json.RawMessage, error) {
	params := period.values()
	setString(params, "categories", categories)
	setString(params, "scenarios", scenarios)
	return c.get(fmt.Sprintf("/users/%d/trend_analysis", userID), params)
}

// DeleteForecastCache invalidates a user's forecast cache, forcing the
// remote service to rebuild it. This counts as a mutating operation.
func (c *Client) DeleteForecastCache(userID int) error {
	if err := requireWrites(); err != nil {
		return err
	}
	_, err := c.delete(fmt.Sprintf("/users/%d/forecast_cache", userID))
	return err
}
