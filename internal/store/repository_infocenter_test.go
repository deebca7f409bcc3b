// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
)

var (
	topicColumns = []string{
		"id", "topic", "description", "cdate", "mdate", "cuser", "muser",
		"closed", "closeddate", "closeduser", "closedname",
	}
	postColumns = []string{"id", "infoid", "post", "cdate", "mdate", "clogin", "mlogin"}
)

func TestGetTopic_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInfoCenterRepository(db, logger.Nop())

	rows := sqlmock.NewRows(topicColumns).
		AddRow(int64(5), "Outage", "core switch", int64(1700000000), int64(1700000100), int64(1), int64(2),
			1, int64(1700000200), int64(3), "admin")

	mock.ExpectQuery("SELECT (.+) FROM info_center t WHERE t.id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	topic, err := repo.GetTopic(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, models.InfoCenterTopic{
		ID:            5,
		Topic:         "Outage",
		Description:   "core switch",
		CreatedAt:     time.Unix(1700000000, 0).UTC(),
		ModifiedAt:    time.Unix(1700000100, 0).UTC(),
		CreatedBy:     1,
		ModifiedBy:    2,
		Closed:        true,
		ClosedAt:      time.Unix(1700000200, 0).UTC(),
		ClosedBy:      3,
		ClosedByLogin: "admin",
	}, topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopic_OpenTopic(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInfoCenterRepository(db, logger.Nop())

	rows := sqlmock.NewRows(topicColumns).
		AddRow(int64(6), "Maintenance", "", int64(1700000000), int64(0), int64(1), int64(0),
			0, int64(0), nil, nil)
	mock.ExpectQuery("FROM info_center t").WillReturnRows(rows)

	topic, err := repo.GetTopic(context.Background(), 6)
	require.NoError(t, err)

	assert.False(t, topic.Closed)
	assert.True(t, topic.ClosedAt.IsZero())
	assert.True(t, topic.ModifiedAt.IsZero())
	assert.Zero(t, topic.ClosedBy)
	assert.Empty(t, topic.ClosedByLogin)
}

func TestGetTopic_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInfoCenterRepository(db, logger.Nop())

	mock.ExpectQuery("FROM info_center t").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTopic(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestGetTopic_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInfoCenterRepository(db, logger.Nop())

	mock.ExpectQuery("FROM info_center t").WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.GetTopic(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTemporary)
}

func TestGetLatestPosts_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInfoCenterRepository(db, logger.Nop())

	rows := sqlmock.NewRows(postColumns).
		AddRow(int64(12), int64(5), "fixed", int64(1700000300), int64(0), "admin", nil).
		AddRow(int64(11), int64(5), "working on it", int64(1700000200), int64(1700000250), "noc", "admin")

	mock.ExpectQuery("SELECT (.+) FROM info_center_post i WHERE i.infoid = \\$1 ORDER BY i.cdate DESC, i.id DESC LIMIT 3").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	posts, err := repo.GetLatestPosts(context.Background(), 5, 3)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, models.InfoCenterPost{
		ID:             12,
		TopicID:        5,
		Post:           "fixed",
		CreatedAt:      time.Unix(1700000300, 0).UTC(),
		CreatedByLogin: "admin",
	}, posts[0])
	assert.Equal(t, "admin", posts[1].ModifiedByLogin)
	assert.Equal(t, time.Unix(1700000250, 0).UTC(), posts[1].ModifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestPosts_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInfoCenterRepository(db, logger.Nop())

	mock.ExpectQuery("FROM info_center_post i").WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.GetLatestPosts(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetLatestPosts_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewInfoCenterRepository(db, logger.Nop())

		mock.ExpectQuery("FROM info_center_post i").WillReturnError(errors.New("boom"))

		_, err := repo.GetLatestPosts(context.Background(), 5, 3)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewInfoCenterRepository(db, logger.Nop())

		mock.ExpectQuery("FROM info_center_post i").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		_, err := repo.GetLatestPosts(context.Background(), 5, 3)
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}
