// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
)

// infoCenterRepository is the SQL implementation of [InfoCenterRepository].
// Dates are stored as unix seconds; zero means "never".
type infoCenterRepository struct {
	*DB
	logger *logger.Logger
}

// NewInfoCenterRepository constructs an [InfoCenterRepository] backed by db.
func NewInfoCenterRepository(db *DB, logger *logger.Logger) InfoCenterRepository {
	logger.Debug().Msg("creating info center repository")
	return &infoCenterRepository{
		DB:     db,
		logger: logger,
	}
}

// GetTopic returns a topic with the login of the user who closed it.
//
// Error handling:
//   - no such topic → [ErrTopicNotFound].
//   - driver-level error → [ErrTemporary] or [ErrExecutingQuery].
func (r *infoCenterRepository) GetTopic(ctx context.Context, topicID int64) (models.InfoCenterTopic, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTopicQuery(r.builder, topicID)
	if err != nil {
		log.Err(err).Str("func", "infoCenterRepository.GetTopic").Int64("topic_id", topicID).Msg("failed to create query")
		return models.InfoCenterTopic{}, err
	}

	var (
		topic                           models.InfoCenterTopic
		createdAt, modifiedAt, closedAt int64
		closed                          int
		closedBy                        sql.NullInt64
		closedByLogin                   sql.NullString
	)

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&topic.ID,
		&topic.Topic,
		&topic.Description,
		&createdAt,
		&modifiedAt,
		&topic.CreatedBy,
		&topic.ModifiedBy,
		&closed,
		&closedAt,
		&closedBy,
		&closedByLogin,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Int64("topic_id", topicID).Msg("info center topic not found")
		return models.InfoCenterTopic{}, ErrTopicNotFound
	case err != nil:
		log.Err(err).Str("func", "infoCenterRepository.GetTopic").Int64("topic_id", topicID).Msg("failed to get topic")
		return models.InfoCenterTopic{}, r.classify(err)
	}

	topic.CreatedAt = unixTime(createdAt)
	topic.ModifiedAt = unixTime(modifiedAt)
	topic.Closed = closed != 0
	topic.ClosedAt = unixTime(closedAt)
	topic.ClosedBy = closedBy.Int64
	topic.ClosedByLogin = closedByLogin.String

	return topic, nil
}

// GetLatestPosts returns at most limit posts of a topic, newest first.
func (r *infoCenterRepository) GetLatestPosts(ctx context.Context, topicID int64, limit uint64) ([]models.InfoCenterPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLatestPostsQuery(r.builder, topicID, limit)
	if err != nil {
		log.Err(err).Str("func", "infoCenterRepository.GetLatestPosts").Int64("topic_id", topicID).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "infoCenterRepository.GetLatestPosts").
			Int64("topic_id", topicID).
			Uint64("limit", limit).
			Msg("failed to execute query for getting posts")
		return nil, r.classify(err)
	}
	defer rows.Close()

	posts := make([]models.InfoCenterPost, 0, limit)
	for rows.Next() {
		var (
			post                  models.InfoCenterPost
			createdAt, modifiedAt int64
			createdBy, modifiedBy sql.NullString
		)

		scanErr := rows.Scan(
			&post.ID,
			&post.TopicID,
			&post.Post,
			&createdAt,
			&modifiedAt,
			&createdBy,
			&modifiedBy,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "infoCenterRepository.GetLatestPosts").
				Int64("topic_id", topicID).
				Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		post.CreatedAt = unixTime(createdAt)
		post.ModifiedAt = unixTime(modifiedAt)
		post.CreatedByLogin = createdBy.String
		post.ModifiedByLogin = modifiedBy.String
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "infoCenterRepository.GetLatestPosts").
			Int64("topic_id", topicID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

func unixTime(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
