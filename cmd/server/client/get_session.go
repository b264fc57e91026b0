package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var getSessionCmd = &cobra.Command{
	Use:   "get-session",
	Short: "Show a wizard session",
	RunE:  runGetSession,
}

func init() {
	getSessionCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = getSessionCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
}

func runGetSession(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	data, err := call(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	printSession(cmd.OutOrStdout(), data)
	return nil
}
