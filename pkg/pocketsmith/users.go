package pocketsmith

import "encoding/json"

// User represents the subset of the authenticated user object the CLI needs
// for its auth probe. The full object is returned verbatim by GetMe.
type User struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetMe returns the current authenticated user.
func (c *Client) GetMe() (json.RawMessage, error) {
	return c.get("/me", nil)
}
