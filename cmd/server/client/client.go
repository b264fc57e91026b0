// Package client provides commands that drive a running wizard server over HTTP
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	raw        bool

	// Shared by the session commands
	sessionID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the wizard API",
	Long:  `Client commands drive a running wizard server by making real HTTP requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "wizard server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&raw, "raw", false, "Print the full JSON response")

	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(listOptionsCmd)
	ClientCmd.AddCommand(setNameCmd)
	ClientCmd.AddCommand(selectCmd)
	ClientCmd.AddCommand(previewCmd)
}

// apiError is a non-2xx response from the server
type apiError struct {
	Status    int
	Code      string
	Message   string
	Retryable bool
}

func (e *apiError) Error() string {
	msg := fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	if e.Retryable {
		msg += " (retryable)"
	}
	return msg
}

// call sends body as JSON to the API and returns the raw response body
func call(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := strings.TrimRight(serverAddr, "/") + "/v1alpha1" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		parsed := gjson.ParseBytes(data)
		return nil, &apiError{
			Status:    resp.StatusCode,
			Code:      parsed.Get("code").String(),
			Message:   parsed.Get("message").String(),
			Retryable: parsed.Get("retryable").Bool(),
		}
	}
	return data, nil
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// printSession writes a short summary of a session response, or the whole
// document with --raw
func printSession(out io.Writer, data []byte) {
	if raw {
		_, _ = out.Write(pretty.Pretty(data))
		return
	}

	doc := gjson.ParseBytes(data)
	fmt.Fprintf(out, "Session ID: %s\n", doc.Get("id").String())
	fmt.Fprintf(out, "Step: %s\n", doc.Get("snapshot.step").String())
	if name := doc.Get("snapshot.draft.name").String(); name != "" {
		fmt.Fprintf(out, "Name: %s\n", name)
	}
	for _, field := range []string{"race", "class", "subclass", "background", "feat"} {
		if v := doc.Get("snapshot.draft." + field + ".name").String(); v != "" {
			fmt.Fprintf(out, "%s: %s\n", titleField(field), v)
		}
	}
	fmt.Fprintf(out, "Catalogs: %s\n", doc.Get("catalog_status.status").String())
	if doc.Get("catalog_status.error").Exists() {
		fmt.Fprintf(out, "Catalog error: %s\n", doc.Get("catalog_status.error").String())
	}

	if doc.Get("snapshot.validation.valid").Bool() {
		fmt.Fprintln(out, "Valid: yes")
		return
	}
	fmt.Fprintln(out, "Valid: no")
	doc.Get("snapshot.validation.errors").ForEach(func(_, v gjson.Result) bool {
		fmt.Fprintf(out, "  - %s\n", v.String())
		return true
	})
}

func titleField(field string) string {
	return strings.ToUpper(field[:1]) + field[1:]
}
