package cmd

import (
	"github.com/spf13/cobra"
)

func newLabelsCmd(opts *rootOptions) *cobra.Command {
	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "Label commands",
	}

	labelsCmd.AddCommand(&cobra.Command{
		Use:   "list <user-id>",
		Short: "List all labels for a user",
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

			result, err := client.ListLabels(id)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	})

	return labelsCmd
}
