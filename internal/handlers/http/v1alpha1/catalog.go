package v1alpha1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
)

// ListOptionsResponse is a selector view over one catalog
type ListOptionsResponse struct {
	Catalog       string               `json:"catalog"`
	CatalogStatus wizard.CatalogStatus `json:"catalog_status"`
	View          any                  `json:"view"`
}

// SearchFeatsResponse lists matching feats and every known category
type SearchFeatsResponse struct {
	Feats      []*dnd5e.Feat `json:"feats"`
	Categories []string      `json:"categories"`
}

// ListClassFeaturesResponse lists a class's features and subclasses
type ListClassFeaturesResponse struct {
	Features      []*dnd5e.ClassFeature `json:"features"`
	Subclasses    []*dnd5e.Subclass     `json:"subclasses"`
	SubclassLevel int                   `json:"subclass_level"`
}

// ListOptions returns the selector view for one of the session's catalogs.
// Query parameters: q (search), filter and value.
func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.wizardService.ListOptions(r.Context(), &wizard.ListOptionsInput{
		SessionID:   sessionID(r),
		Catalog:     mux.Vars(r)["catalog"],
		Search:      query.Get("q"),
		Filter:      query.Get("filter"),
		FilterValue: query.Get("value"),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &ListOptionsResponse{
		Catalog:       output.Catalog,
		CatalogStatus: output.CatalogStatus,
		View:          output.View,
	})
}

// SearchFeats queries the feat table by q and category
func (h *Handler) SearchFeats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.wizardService.SearchFeats(r.Context(), &wizard.SearchFeatsInput{
		Query:    query.Get("q"),
		Category: query.Get("category"),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &SearchFeatsResponse{
		Feats:      output.Feats,
		Categories: output.Categories,
	})
}

// ListClassFeatures returns class_id's features up to level, narrowed by q
func (h *Handler) ListClassFeatures(w http.ResponseWriter, r *http.Request) {
	level, err := queryInt(r, "level")
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.ListClassFeatures(r.Context(), &wizard.ListClassFeaturesInput{
		ClassID: r.URL.Query().Get("class_id"),
		Level:   level,
		Query:   r.URL.Query().Get("q"),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &ListClassFeaturesResponse{
		Features:      output.Features,
		Subclasses:    output.Subclasses,
		SubclassLevel: output.SubclassLevel,
	})
}
