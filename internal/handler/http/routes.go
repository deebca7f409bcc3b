// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// hideInfoCenterOption hides the info center from users that have it set.
const hideInfoCenterOption = "privileges.hide_infocenter"

// Init builds the router for the services the handler holds.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if h.appInfo != nil {
		router.Get("/api/version/", h.getServerVersion)
	}

	if h.settings != nil {
		router.Route("/api/config", func(r chi.Router) {
			r.Get("/check/{name}", h.checkOption)
		})
	}

	if h.infoCenter != nil {
		router.Route("/api/infocenter", func(r chi.Router) {
			if h.settings != nil {
				r.Use(h.hiddenBy(hideInfoCenterOption))
			}
			r.Get("/{id}/short", h.getShortThread)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
