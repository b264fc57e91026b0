package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	selectField    string
	selectOptionID string
)

// selectFields maps the --field values onto their routes
var selectFields = map[string]string{
	"race":       "race",
	"class":      "class",
	"subclass":   "subclass",
	"background": "background",
	"feat":       "feat",
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a race, class, subclass, background or feat",
	Long:  `Pick a catalog record for the draft. An empty --id clears the field.`,
	RunE:  runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	selectCmd.Flags().StringVar(&selectField, "field", "", "race, class, subclass, background or feat (required)")
	selectCmd.Flags().StringVar(&selectOptionID, "id", "", "Record ID, e.g. RACE_ELF")
	_ = selectCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	_ = selectCmd.MarkFlagRequired("field")      // nolint:errcheck // safe to ignore in init
}

func runSelect(cmd *cobra.Command, _ []string) error {
	route, ok := selectFields[selectField]
	if !ok {
		return fmt.Errorf("unknown field %q", selectField)
	}

	ctx, cancel := requestContext()
	defer cancel()

	path := "/sessions/" + url.PathEscape(sessionID) + "/" + route
	data, err := call(ctx, http.MethodPut, path, map[string]string{"id": selectOptionID})
	if err != nil {
		return fmt.Errorf("failed to select %s: %w", selectField, err)
	}

	printSession(cmd.OutOrStdout(), data)
	return nil
}
