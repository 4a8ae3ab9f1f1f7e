package pocketsmith

import (
	"encoding/json"
	"fmt"
)

// CategoryFields holds the optional fields shared by category create and
// update requests. ParentID and RefundBehaviour accept an explicit null:
// Null[int]() sends "parent_id": null, which makes a category top-level,
// while an unset field leaves the parent untouched.
type CategoryFields struct {
	Title           Optional[string]
	Colour          Optional[string] // CSS hex colour, e.g. "#ff0000"
	ParentID        Optional[int]
	IsTransfer      Optional[bool]
	IsBill          Optional[bool]
	RollUp          Optional[bool]
	RefundBehaviour Optional[string] // "debit_only", "credit_only" or null
}

func (f CategoryFields) addTo(body map[string]any) {
	f.Title.addTo(body, "title")
	f.Colour.addTo(body, "colour")
	f.ParentID.addTo(body, "parent_id")
	f.IsTransfer.addTo(body, "is_transfer")
	f.IsBill.addTo(body, "is_bill")
	f.RollUp.addTo(body, "roll_up")
	f.RefundBehaviour.addTo(body, "refund_behaviour")
}

// GetCategory returns a single category by ID.
func (c *Client) GetCategory(categoryID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/categories/%d", categoryID), nil)
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(categoryID int, update CategoryFields) (json.RawMessage, error) {
	if err := requireWrites(); err != nil {
		return nil, err
	}
	body := map[string]any{}
	update.addTo(body)
	return c.put(fmt.Sprintf("/categories/%d", categoryID), body)
}

// DeleteCategory deletes a category. This deletes all budgets within the
// category and uncategorizes all transactions assigned to it.
func (c *Client) DeleteCategory(categoryID int) error {
	if err := requireWrites(); err != nil {
		return err
	}
	_, err := c.delete(fmt.Sprintf("/categories/%d", categoryID))
	return err
}

// ListCategories lists all categories for a user.
func (c *Client) ListCategories(userID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/users/%d/categories", userID), nil)
}

// CreateCategory creates a category for a user. title is required by the
// API; the remaining fields follow the same rules as UpdateCategory.
func (c *Client) CreateCategory(userID int, title string, fields CategoryFields) (json.RawMessage, error) {
	if err := requireWrites(); err != nil {
		return nil, err
	}
	body := map[string]any{}
	fields.addTo(body)
	body["title"] = title
	return c.post(fmt.Sprintf("/users/%d/categories", userID), body)
}
