// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/rs/zerolog"
)

type errorReply struct {
	status int
	detail string
}

// errorReplyMap maps service errors to responses. Every token and subject
// failure gets the same 401 reply.
var errorReplyMap = map[error]errorReply{
	service.ErrInvalidDataProvided: {http.StatusUnprocessableEntity, detailInvalidData},
	service.ErrDuplicateEmail:      {http.StatusBadRequest, detailEmailAlreadyRegistered},
	service.ErrInvalidCredentials:  {http.StatusBadRequest, detailInvalidCredentials},
	service.ErrInvalidToken:        {http.StatusUnauthorized, detailInvalidToken},
	service.ErrMissingSubject:      {http.StatusUnauthorized, detailInvalidToken},
	service.ErrUnknownSubject:      {http.StatusUnauthorized, detailInvalidToken},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorReplyMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, detailInternal}
}

// logLevelFromError is Info for rejections the client caused and Error for
// everything that maps to a 500.
func logLevelFromError(err error) zerolog.Level {
	if replyFromError(err).status >= http.StatusInternalServerError {
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// writeError writes the reply mapped from err.
func writeError(w http.ResponseWriter, err error) {
	reply := replyFromError(err)
	writeDetail(w, reply.status, reply.detail)
}

// writeDetail writes a {"detail": ...} body. 401 replies carry the
// WWW-Authenticate challenge.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
