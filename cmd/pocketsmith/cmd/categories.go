package cmd

import (
	"github.com/lextoumbourou/pocketsmith-skill/pkg/pocketsmith"
	"github.com/spf13/cobra"
)

// categoryFieldFlags holds the optional category fields shared by the
// create and update commands.
type categoryFieldFlags struct {
	title           string
	colour          string
	parentID        int
	isTransfer      bool
	isBill          bool
	rollUp          bool
	refundBehaviour string
}

func (f *categoryFieldFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.title, "title", "", "category title")
	fl.StringVar(&f.colour, "colour", "", "CSS hex colour (e.g. '#ff0000')")
	fl.IntVar(&f.parentID, "parent-id", 0, "parent category ID")
	fl.BoolVar(&f.isTransfer, "is-transfer", false, "whether this is a transfer category")
	fl.BoolVar(&f.isBill, "is-bill", false, "whether this is a bill category")
	fl.BoolVar(&f.rollUp, "roll-up", false, "whether to roll up to the parent category")
	fl.StringVar(&f.refundBehaviour, "refund-behaviour", "", "refund behaviour (debit_only or credit_only)")
}

func (f *categoryFieldFlags) fields(cmd *cobra.Command) pocketsmith.CategoryFields {
	fields := pocketsmith.CategoryFields{}
	flags := cmd.Flags()
	if flags.Changed("title") {
		fields.Title = pocketsmith.Some(f.title)
	}
	if flags.Changed("colour") {
		fields.Colour = pocketsmith.Some(f.colour)
	}
	if flags.Changed("parent-id") {
		fields.ParentID = pocketsmith.Some(f.parentID)
	}
	if flags.Changed("is-transfer") {
		fields.IsTransfer = pocketsmith.Some(f.isTransfer)
	}
	if flags.Changed("is-bill") {
		fields.IsBill = pocketsmith.Some(f.isBill)
	}
	if flags.Changed("roll-up") {
		fields.RollUp = pocketsmith.Some(f.rollUp)
	}
	if flags.Changed("refund-behaviour") {
		fields.RefundBehaviour = pocketsmith.Some(f.refundBehaviour)
	}
	return fields
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
	}

	categoriesCmd.AddCommand(newCategoriesGetCmd(opts))
	categoriesCmd.AddCommand(newCategoriesListCmd(opts))
	categoriesCmd.AddCommand(newCategoriesCreateCmd(opts))
	categoriesCmd.AddCommand(newCategoriesUpdateCmd(opts))
	categoriesCmd.AddCommand(newCategoriesDeleteCmd(opts))

	return categoriesCmd
}

func newCategoriesGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a single category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.GetCategory(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newCategoriesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <user-id>",
		Short: "List all categories for a user",
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

			result, err := client.ListCategories(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func newCategoriesCreateCmd(opts *rootOptions) *cobra.Command {
	fields := &categoryFieldFlags{}

	cmd := &cobra.Command{
		Use:   "create <user-id>",
		Short: "Create a category for a user (requires POCKETSMITH_ALLOW_WRITES=true)",
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

			result, err := client.CreateCategory(id, fields.title, fields.fields(cmd))
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	fields.register(cmd)
	cmd.MarkFlagRequired("title")
	return cmd
}

func newCategoriesUpdateCmd(opts *rootOptions) *cobra.Command {
	fields := &categoryFieldFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			result, err := client.UpdateCategory(id, fields.fields(cmd))
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	fields.register(cmd)
	return cmd
}

func newCategoriesDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (requires POCKETSMITH_ALLOW_WRITES=true)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category ID")
			if err != nil {
				return err
			}

			client, err := newClient(opts)
			if err != nil {
				return err
			}

			if err := client.DeleteCategory(id); err != nil {
				return err
			}

			return writeSuccess(cmd.OutOrStdout())
		},
	}
}
