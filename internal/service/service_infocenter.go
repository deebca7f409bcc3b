// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/models"
)

const (
	// shortThreadLimitOption caps the number of posts in the short view.
	shortThreadLimitOption  = "phpui.infocenter_short_limit"
	defaultShortThreadLimit = 3
)

type infoCenterService struct {
	repository store.InfoCenterRepository
	settings   SettingsService

	logger *logger.Logger
}

func NewInfoCenterService(repository store.InfoCenterRepository, settings SettingsService, logger *logger.Logger) InfoCenterService {
	return &infoCenterService{
		repository: repository,
		settings:   settings,
		logger:     logger,
	}
}

// GetShortThread returns a topic with its latest posts, newest first.
func (s *infoCenterService) GetShortThread(ctx context.Context, topicID int64) (models.InfoCenterThread, error) {
	log := logger.FromContext(ctx)

	if topicID <= 0 {
		return models.InfoCenterThread{}, ErrInvalidTopicID
	}

	topic, err := s.repository.GetTopic(ctx, topicID)
	if err != nil {
		log.Err(err).Str("func", "infoCenterService.GetShortThread").Int64("topic_id", topicID).Msg("error getting topic")
		return models.InfoCenterThread{}, err
	}

	limit := s.postLimit()
	posts, err := s.repository.GetLatestPosts(ctx, topicID, limit)
	if err != nil {
		log.Err(err).Str("func", "infoCenterService.GetShortThread").Int64("topic_id", topicID).Msg("error getting posts")
		return models.InfoCenterThread{}, err
	}

	return models.InfoCenterThread{
		Topic: topic,
		Posts: posts,
	}, nil
}

func (s *infoCenterService) postLimit() uint64 {
	st := s.settings.Store()
	if st == nil {
		return defaultShortThreadLimit
	}

	limit := st.Int(shortThreadLimitOption, defaultShortThreadLimit)
	if limit <= 0 {
		return defaultShortThreadLimit
	}
	return uint64(limit)
}
