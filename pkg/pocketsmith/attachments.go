package pocketsmith

import (
	"encoding/json"
	"fmt"
)

// AttachmentUpdate holds the fields of an attachment update. An empty
// update sends an empty JSON object, which the API accepts as a no-op.
type AttachmentUpdate struct {
	Title Optional[string]
}

func (u AttachmentUpdate) payload() map[string]any {
	body := map[string]any{}
	u.Title.addTo(body, "title")
	return body
}

// GetAttachment returns a single attachment by ID.
func (c *Client) GetAttachment(attachmentID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/attachments/%d", attachmentID), nil)
}

// UpdateAttachment updates an attachment.
func (c *Client) UpdateAttachment(attachmentID int, update AttachmentUpdate) (json.RawMessage, error) {
	if err := requireWrites(); err != nil {
		return nil, err
	}
	return c.put(fmt.Sprintf("/attachments/%d", attachmentID), update.payload())
}

// DeleteAttachment deletes an attachment.
func (c *Client) DeleteAttachment(attachmentID int) error {
	if err := requireWrites(); err != nil {
		return err
	}
	_, err := c.delete(fmt.Sprintf("/attachments/%d", attachmentID))
	return err
}

// ListUserAttachments lists all attachments for a user.
func (c *Client) ListUserAttachments(userID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/users/%d/attachments", userID), nil)
}

// ListTransactionAttachments lists attachments assigned to a transaction.
func (c *Client) ListTransactionAttachments(transactionID int) (json.RawMessage, error) {
	return c.get(fmt.Sprintf("/transactions/%d/attachments", transactionID), nil)
}

// AssignTransactionAttachment assigns an existing attachment to a
// transaction.
func (c *Client) AssignTransactionAttachment(transactionID, attachmentID int) (json.RawMessage, error) {
	if err := requireWrites(); err != nil {
		return nil, err
	}
	body := map[string]any{"attachment_id": attachmentID}
	return c.post(fmt.Sprintf("/transactions/%d/attachments", transactionID), body)
}

// UnassignTransactionAttachment removes an attachment from a transaction
// without deleting the attachment itself.
func (c *Client) UnassignTransactionAttachment(transactionID, attachmentID int) error {
	if err := requireWrites(); err != nil {
		return err
	}
	_, err := c.delete(fmt.Sprintf("/transactions/%d/attachments/%d", transactionID, attachmentID))
	return err
}
