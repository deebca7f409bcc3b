// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-lms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UIConfigRepository reads operator options kept in the uiconfig table.
type UIConfigRepository interface {
	GetOptions(ctx context.Context) ([]models.UIConfigOption, error)
}

// InfoCenterRepository reads the info center notice board.
type InfoCenterRepository interface {
	GetTopic(ctx context.Context, topicID int64) (models.InfoCenterTopic, error)
	GetLatestPosts(ctx context.Context, topicID int64, limit uint64) ([]models.InfoCenterPost, error)
}
