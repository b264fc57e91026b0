package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var (
	createName string
	createWait bool
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a new wizard session",
	Long:  `Start a new wizard session. Reference data loads in the background; --wait polls until it is ready.`,
	RunE:  runCreateSession,
}

func init() {
	createSessionCmd.Flags().StringVar(&createName, "name", "", "Character name (optional)")
	createSessionCmd.Flags().BoolVar(&createWait, "wait", false, "Wait for reference data to finish loading")
}

func runCreateSession(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	data, err := call(ctx, http.MethodPost, "/sessions", map[string]string{"name": createName})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if createWait {
		id := gjson.GetBytes(data, "id").String()
		data, err = waitForCatalogs(ctx, id)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session created\n\n")
	printSession(out, data)
	return nil
}

// waitForCatalogs polls the session until its catalog load settles. A
// failed load is reported, not retried.
func waitForCatalogs(ctx context.Context, id string) ([]byte, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	var latest []byte
	op := func() error {
		data, err := call(ctx, http.MethodGet, "/sessions/"+id, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		latest = data

		switch status := gjson.GetBytes(data, "catalog_status.status").String(); status {
		case "ready":
			return nil
		case "error":
			return backoff.Permanent(fmt.Errorf("reference data failed to load: %s",
				gjson.GetBytes(data, "catalog_status.error").String()))
		default:
			return fmt.Errorf("catalogs still %s", status)
		}
	}

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("failed waiting for session %s: %w", id, err)
	}
	return latest, nil
}
