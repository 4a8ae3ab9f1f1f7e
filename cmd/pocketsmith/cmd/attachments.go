package cmd

import (
	"github.com/lextoumbourou/pocketsmith-skill/pkg/pocketsmith"
	"github.com/spf13/cobra"
)

func newAttachmentsCmd(opts *rootOptions) *cobra.Command {
	attachmentsCmd := &cobra.Command{
		Use:   "attachments",
		Short: "Attachment commands",
	}

	attachmentsCmd.AddCommand(newAttachmentsGetCmd(opts))
	attachmentsCmd.AddCommand(newAttachmentsUpdateCmd(opts))
	attachmentsCmd.AddCommand(newAttachmentsDeleteCmd(opts))
	attachmentsCmd.AddCommand(newAttachmentsListByUserCmd(opts))
	attachmentsCmd.AddCommand(newAttachmentsListByTransactionCmd(opts))
	attachmentsCmd.AddCommand(newAttachmentsAssignCmd(opts))
	attachmentsCmd.AddCommand(newAttachmentsUnassignCmd(opts))

	return attachmentsCmd
}

func newAttachmentsGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a single attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "attachment ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.GetAttachment(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newAttachmentsUpdateCmd(opts *rootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an attachment (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "attachment ID")
			if err != nil {
				return err
			}

			update := pocketsmith.AttachmentUpdate{}
			if cmd.Flags().Changed("title") {
				update.Title = pocketsmith.Some(title)
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.UpdateAttachment(id, update)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "attachment title")
	return cmd
}

func newAttachmentsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an attachment (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "attachment ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			if err := client.DeleteAttachment(id); err != nil {
				return err
			}

			return writeSuccess(cmd.OutOrStdout())
		},
	}
}

func newAttachmentsListByUserCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-by-user <user-id>",
		Short: "List all attachments for a user",
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

			result, err := client.ListUserAttachments(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newAttachmentsListByTransactionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-by-transaction <transaction-id>",
		Short: "List attachments assigned to a transaction",
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

			result, err := client.ListTransactionAttachments(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newAttachmentsAssignCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <transaction-id> <attachment-id>",
		Short: "Assign an attachment to a transaction (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := parseID(args[0], "transaction ID")
			if err != nil {
				return err
			}
			attachmentID, err := parseID(args[1], "attachment ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.AssignTransactionAttachment(transactionID, attachmentID)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newAttachmentsUnassignCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <transaction-id> <attachment-id>",
		Short: "Remove an attachment from a transaction (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := parseID(args[0], "transaction ID")
			if err != nil {
				return err
			}
			attachmentID, err := parseID(args[1], "attachment ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			if err := client.UnassignTransactionAttachment(transactionID, attachmentID); err != nil {
				return err
			}

			return writeSuccess(cmd.OutOrStdout())
		},
	}
}
