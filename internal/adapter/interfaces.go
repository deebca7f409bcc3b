// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running LMS server over its HTTP API.
//
// [ServerAdapter] hides the transport from the lmsconf commands. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// callers match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-lms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter queries a running server.
type ServerAdapter interface {
	// CheckOption asks the server how a qualified option name resolves.
	CheckOption(ctx context.Context, name string) (models.OptionCheck, error)

	// GetServerVersion returns the version the server reports.
	GetServerVersion(ctx context.Context) (string, error)

	// GetShortThread fetches the short view of an info center topic.
	GetShortThread(ctx context.Context, topicID int64) (models.InfoCenterThread, error)
}
