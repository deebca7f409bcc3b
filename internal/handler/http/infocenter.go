// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getShortThread(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	topicID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getShortThread").Msg("topic id is not a number")
		writeError(w, fmt.Errorf("%w: id: %w", ErrInvalidPathParameter, err))
		return
	}

	thread, err := h.infoCenter.GetShortThread(r.Context(), topicID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getShortThread").Int64("topic_id", topicID).Msg("error getting short thread")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, thread, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getShortThread").Msg("error writing response")
	}
}
