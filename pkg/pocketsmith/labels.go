package pocketsmith

import (
	"encoding/json"
	"fmt"
)

// ListLabels lists all labels for a user.
func (c *Client) ListLabels(userID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/users/%d/labels", userID), nil)
}
