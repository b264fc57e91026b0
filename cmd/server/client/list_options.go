package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var (
	optionsCatalog string
	optionsSearch  string
	optionsFilter  string
	optionsValue   string
)

var listOptionsCmd = &cobra.Command{
	Use:   "list-options",
	Short: "Search and filter one of the session's catalogs",
	RunE:  runListOptions,
}

func init() {
	listOptionsCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	listOptionsCmd.Flags().StringVar(&optionsCatalog, "catalog", "races", "races, classes, subclasses, backgrounds or feats")
	listOptionsCmd.Flags().StringVar(&optionsSearch, "search", "", "Search text")
	listOptionsCmd.Flags().StringVar(&optionsFilter, "filter", "", "Filter name")
	listOptionsCmd.Flags().StringVar(&optionsValue, "value", "", "Filter value, for filters that take one")
	_ = listOptionsCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
}

func runListOptions(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	query := url.Values{}
	if optionsSearch != "" {
		query.Set("q", optionsSearch)
	}
	if optionsFilter != "" {
		query.Set("filter", optionsFilter)
	}
	if optionsValue != "" {
		query.Set("value", optionsValue)
	}

	path := "/sessions/" + url.PathEscape(sessionID) + "/options/" + url.PathEscape(optionsCatalog)
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	data, err := call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("failed to list options: %w", err)
	}

	out := cmd.OutOrStdout()
	if raw {
		_, _ = out.Write(pretty.Pretty(data))
		return nil
	}

	view := gjson.GetBytes(data, "view")
	if view.Get("loading").Bool() {
		fmt.Fprintln(out, "Reference data is still loading, try again shortly")
		return nil
	}

	results := view.Get("results").Array()
	fmt.Fprintf(out, "Found %d %s\n", len(results), optionsCatalog)
	for _, r := range results {
		fmt.Fprintf(out, "  %-28s %s\n", r.Get("id").String(), r.Get("name").String())
	}

	if suggestions := view.Get("suggestions").Array(); len(suggestions) > 0 {
		names := make([]string, len(suggestions))
		for i, s := range suggestions {
			names[i] = s.String()
		}
		fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(out, "Filters: %s\n", view.Get("filters").String())
	return nil
}
