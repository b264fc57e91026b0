// Package v1alpha1 serves the character wizard over HTTP JSON
package v1alpha1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/selectors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
)

// PathPrefix is where the API is mounted
const PathPrefix = "/v1alpha1"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	WizardService wizard.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.WizardService == nil {
		return errors.InvalidArgument("wizard service is required")
	}
	return nil
}

// Handler implements the wizard HTTP API
type Handler struct {
	wizardService wizard.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		wizardService: cfg.WizardService,
	}, nil
}

// Register mounts every route on r under PathPrefix, plus /healthz
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix(PathPrefix).Subrouter()

	api.HandleFunc("/sessions", h.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", h.DeleteSession).Methods(http.MethodDelete)

	api.HandleFunc("/sessions/{id}/name", h.UpdateName).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/name:continue", h.ContinueName).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/race", h.SelectOption(selectors.CatalogRaces)).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/class", h.SelectOption(selectors.CatalogClasses)).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/subclass", h.SelectOption(selectors.CatalogSubclasses)).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/background", h.SelectOption(selectors.CatalogBackgrounds)).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/feat", h.SelectOption(selectors.CatalogFeats)).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/alignment", h.UpdateAlignment).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/level", h.UpdateLevel).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/ability-scores", h.UpdateAbilityScores).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/ability-scores:roll", h.RollAbilityScores).Methods(http.MethodPost)

	api.HandleFunc("/sessions/{id}/preview", h.GetPreview).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/options/{catalog}", h.ListOptions).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/catalog:reload", h.ReloadCatalogs).Methods(http.MethodPost)

	api.HandleFunc("/catalog/feats", h.SearchFeats).Methods(http.MethodGet)
	api.HandleFunc("/catalog/class-features", h.ListClassFeatures).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
}

// NewRouter builds a router with the handler's routes and the standard
// middleware chain
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(AccessLog, Recovery)
	h.Register(r)
	return r
}

// Health reports that the process is serving
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	errors.WriteHTTPError(w, errors.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, &errors.HTTPBody{
		Code:    errors.CodeUnimplemented,
		Message: r.Method + " is not supported on " + r.URL.Path,
	})
}
