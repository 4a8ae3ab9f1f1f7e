package cmd

import (
	"encoding/json"
	"errors"

	"github.com/lextoumbourou/pocketsmith-skill/pkg/pocketsmith"
	"github.com/spf13/cobra"
)

// errNotAuthenticated signals that the auth status probe failed. The probe
// already printed its payload to stdout, so runCommand only converts this
// into exit code 1 without writing to stderr. This asymmetry with every
// other command is deliberate: the probe is a non-destructive status check
// whose "not authenticated" answer is a result, not an error.
var errNotAuthenticated = errors.New("not authenticated")

func newAuthCmd(opts *rootOptions) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the configured developer key is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			client, err := newClient(opts)
			if err != nil {
				writeValue(out, map[string]any{"authenticated": false, "error": err.Error()})
				return errNotAuthenticated
			}

			raw, err := client.GetMe()
			if err != nil {
				writeValue(out, map[string]any{"authenticated": false, "error": err.Error()})
				return errNotAuthenticated
			}

			var user pocketsmith.User
			if err := json.Unmarshal(raw, &user); err != nil {
				writeValue(out, map[string]any{"authenticated": false, "error": err.Error()})
				return errNotAuthenticated
			}

			return writeValue(out, map[string]any{
				"authenticated": true,
				"user_id":       user.ID,
				"login":         user.Login,
			})
		},
	}

	authCmd.AddCommand(statusCmd)
	return authCmd
}
