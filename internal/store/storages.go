// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-lms/internal/logger"

// Storages groups every repository built on one database connection.
type Storages struct {
	UIConfigRepository   UIConfigRepository
	InfoCenterRepository InfoCenterRepository
}

// NewStorages builds the repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UIConfigRepository:   NewUIConfigRepository(db, logger),
		InfoCenterRepository: NewInfoCenterRepository(db, logger),
	}
}
