package v1alpha1

import (
	"net/http"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
)

// Request bodies

// CreateSessionRequest optionally pre-fills the character name
type CreateSessionRequest struct {
	Name string `json:"name"`
}

// UpdateNameRequest sets the character name
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// SelectOptionRequest picks a catalog record; an empty id clears it
type SelectOptionRequest struct {
	ID string `json:"id"`
}

// UpdateAlignmentRequest sets the alignment by id or display name
type UpdateAlignmentRequest struct {
	Alignment string `json:"alignment"`
}

// UpdateLevelRequest sets the character level
type UpdateLevelRequest struct {
	Level int `json:"level"`
}

// RollAbilityScoresRequest picks the generation method
type RollAbilityScoresRequest struct {
	Method string `json:"method"`
}

// RollAbilityScoresResponse is the session after rolling plus the rolls
type RollAbilityScoresResponse struct {
	Session *wizard.SessionView `json:"session"`
	Method  string              `json:"method"`
	Rolls   []*dice.Roll        `json:"rolls"`
}

// CreateSession starts a wizard session
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decode(r, &req, true); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.CreateSession(r.Context(), &wizard.CreateSessionInput{
		Name: req.Name,
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Location", PathPrefix+"/sessions/"+output.Session.ID)
	writeJSON(w, http.StatusCreated, output.Session)
}

// GetSession returns the session snapshot
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.wizardService.GetSession(r.Context(), &wizard.GetSessionInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Session)
}

// DeleteSession discards a session
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	_, err := h.wizardService.DeleteSession(r.Context(), &wizard.DeleteSessionInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateName changes the character name
func (h *Handler) UpdateName(w http.ResponseWriter, r *http.Request) {
	var req UpdateNameRequest
	if err := decode(r, &req, false); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.UpdateName(r.Context(), &wizard.UpdateNameInput{
		SessionID: sessionID(r),
		Name:      req.Name,
	})
	writeUpdate(w, output, err)
}

// ContinueName confirms the name step
func (h *Handler) ContinueName(w http.ResponseWriter, r *http.Request) {
	output, err := h.wizardService.ContinueName(r.Context(), &wizard.ContinueNameInput{
		SessionID: sessionID(r),
	})
	writeUpdate(w, output, err)
}

// SelectOption returns the handler that picks a record from catalog
func (h *Handler) SelectOption(catalog string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectOptionRequest
		if err := decode(r, &req, false); err != nil {
			errors.WriteHTTPError(w, err)
			return
		}

		output, err := h.wizardService.SelectOption(r.Context(), &wizard.SelectOptionInput{
			SessionID: sessionID(r),
			Catalog:   catalog,
			OptionID:  req.ID,
		})
		writeUpdate(w, output, err)
	}
}

// UpdateAlignment sets the alignment
func (h *Handler) UpdateAlignment(w http.ResponseWriter, r *http.Request) {
	var req UpdateAlignmentRequest
	if err := decode(r, &req, false); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.UpdateAlignment(r.Context(), &wizard.UpdateAlignmentInput{
		SessionID: sessionID(r),
		Alignment: req.Alignment,
	})
	writeUpdate(w, output, err)
}

// UpdateLevel sets the character level
func (h *Handler) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	var req UpdateLevelRequest
	if err := decode(r, &req, false); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.UpdateLevel(r.Context(), &wizard.UpdateLevelInput{
		SessionID: sessionID(r),
		Level:     req.Level,
	})
	writeUpdate(w, output, err)
}

// UpdateAbilityScores sets the base ability scores
func (h *Handler) UpdateAbilityScores(w http.ResponseWriter, r *http.Request) {
	var scores dnd5e.AbilityScores
	if err := decode(r, &scores, false); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.UpdateAbilityScores(r.Context(), &wizard.UpdateAbilityScoresInput{
		SessionID:     sessionID(r),
		AbilityScores: &scores,
	})
	writeUpdate(w, output, err)
}

// RollAbilityScores generates base scores with dice or the standard array
func (h *Handler) RollAbilityScores(w http.ResponseWriter, r *http.Request) {
	var req RollAbilityScoresRequest
	if err := decode(r, &req, true); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	output, err := h.wizardService.RollAbilityScores(r.Context(), &wizard.RollAbilityScoresInput{
		SessionID: sessionID(r),
		Method:    req.Method,
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &RollAbilityScoresResponse{
		Session: output.Session,
		Method:  output.Method,
		Rolls:   output.Rolls,
	})
}

// GetPreview returns the character sheet preview
func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	output, err := h.wizardService.GetPreview(r.Context(), &wizard.GetPreviewInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Preview)
}

// ReloadCatalogs refetches the session's reference data
func (h *Handler) ReloadCatalogs(w http.ResponseWriter, r *http.Request) {
	output, err := h.wizardService.ReloadCatalogs(r.Context(), &wizard.ReloadCatalogsInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Session)
}

func writeUpdate(w http.ResponseWriter, output *wizard.UpdateOutput, err error) {
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Session)
}
