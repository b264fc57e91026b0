package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	characterName string
	continueName  bool
)

var setNameCmd = &cobra.Command{
	Use:   "set-name",
	Short: "Set the character name",
	Long:  `Set the character name, and with --continue confirm the name step.`,
	RunE:  runSetName,
}

func init() {
	setNameCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	setNameCmd.Flags().StringVar(&characterName, "name", "", "Character name (required)")
	setNameCmd.Flags().BoolVar(&continueName, "continue", false, "Confirm the name and move on")
	_ = setNameCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	_ = setNameCmd.MarkFlagRequired("name")       // nolint:errcheck // safe to ignore in init
}

func runSetName(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	path := "/sessions/" + url.PathEscape(sessionID) + "/name"
	data, err := call(ctx, http.MethodPut, path, map[string]string{"name": characterName})
	if err != nil {
		return fmt.Errorf("failed to set name: %w", err)
	}

	if continueName {
		data, err = call(ctx, http.MethodPost, path+":continue", nil)
		if err != nil {
			return fmt.Errorf("failed to confirm name: %w", err)
		}
	}

	printSession(cmd.OutOrStdout(), data)
	return nil
}
