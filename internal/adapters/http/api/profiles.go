// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	service "github.com/okian/confplan/internal/app"
	"github.com/okian/confplan/internal/profile"
)

// Request bodies are small profile documents; this bound keeps a
// misbehaving client from buffering arbitrary amounts.
const maxProfileBody = 1 << 20

// ProfileDependencies defines the interface for profile operations.
type ProfileDependencies interface {
	Profiles(ctx context.Context) []service.ProfileInfo
	RegisterProfile(ctx context.Context, name string, doc []byte) (service.ProfileInfo, error)
}

// ProfilesHandler handles profile listing and registration.
type ProfilesHandler struct {
	deps ProfileDependencies
}

// NewProfilesHandler creates a new profiles handler.
func NewProfilesHandler(deps ProfileDependencies) *ProfilesHandler {
	return &ProfilesHandler{deps: deps}
}

// HandleProfiles handles GET and POST /v1/profiles requests.
func (h *ProfilesHandler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Profiles(r.Context()))
	case http.MethodPost:
		h.handleRegister(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *ProfilesHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing_name", errors.New("name query parameter is required"))
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxProfileBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", err)
		return
	}
	info, err := h.deps.RegisterProfile(r.Context(), name, body)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrMissingInterests), errors.Is(err, profile.ErrInvalidProfile):
			writeError(w, http.StatusBadRequest, "invalid_profile", err)
		default:
			writeError(w, http.StatusBadRequest, "bad_request", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, info)
}
