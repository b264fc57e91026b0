package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the character sheet preview",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = previewCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	data, err := call(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID)+"/preview", nil)
	if err != nil {
		return fmt.Errorf("failed to get preview: %w", err)
	}

	out := cmd.OutOrStdout()
	if raw {
		_, _ = out.Write(pretty.Pretty(data))
		return nil
	}

	doc := gjson.ParseBytes(data)
	fmt.Fprintf(out, "%s, level %d %s %s\n",
		doc.Get("name").String(), doc.Get("level").Int(), doc.Get("race").String(), doc.Get("class").String())
	fmt.Fprintf(out, "Proficiency bonus: +%d\n", doc.Get("stats.proficiency_bonus").Int())
	if ac := doc.Get("stats.armor_class"); ac.Exists() {
		fmt.Fprintf(out, "Armor class: %d\n", ac.Int())
	}
	if hp := doc.Get("stats.hit_points"); hp.Exists() {
		fmt.Fprintf(out, "Hit points: %d\n", hp.Int())
	}
	for _, ability := range []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"} {
		fmt.Fprintf(out, "  %-13s %2d (%+d)\n", ability,
			doc.Get("stats.final_scores."+ability).Int(), doc.Get("stats.modifiers."+ability).Int())
	}
	if missing := doc.Get("missing_fields").Array(); len(missing) > 0 {
		fmt.Fprintf(out, "Still to choose: %s\n", doc.Get("missing_fields").String())
	}
	return nil
}
