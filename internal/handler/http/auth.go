// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		log.WithLevel(logLevelFromError(err)).Err(err).Object("credentials", credentials).Msg("registration failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, token, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		log.WithLevel(logLevelFromError(err)).Err(err).Object("credentials", credentials).Msg("login failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		// the auth middleware always sets the user; reaching this is a wiring bug
		logger.FromRequest(r).Error().Msg("no user in request context")
		writeDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

// decodeCredentials reads and validates the {email, password} body. On
// failure it writes the response (400 for unreadable JSON, 422 for invalid
// fields) and returns false.
func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(w, r, &credentials); err != nil {
		log.Info().Err(err).Msg("Invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, detailInvalidJSON)
		return models.Credentials{}, false
	}

	credentials.Email = strings.TrimSpace(credentials.Email)

	if err := h.validate.Struct(credentials); err != nil {
		log.Info().Err(err).Object("credentials", credentials).Msg("credentials failed validation")
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail(err))
		return models.Credentials{}, false
	}

	return credentials, true
}
