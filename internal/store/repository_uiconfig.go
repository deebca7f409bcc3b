// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
)

// uiConfigRepository is the SQL implementation of [UIConfigRepository].
type uiConfigRepository struct {
	*DB
	logger *logger.Logger
}

// NewUIConfigRepository constructs a [UIConfigRepository] backed by db.
func NewUIConfigRepository(db *DB, logger *logger.Logger) UIConfigRepository {
	logger.Debug().Msg("creating uiconfig repository")
	return &uiConfigRepository{
		DB:     db,
		logger: logger,
	}
}

// GetOptions returns every enabled option row ordered by section and var.
// An empty table yields an empty slice.
func (r *uiConfigRepository) GetOptions(ctx context.Context) ([]models.UIConfigOption, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOptionsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "uiConfigRepository.GetOptions").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "uiConfigRepository.GetOptions").Msg("failed to execute query for getting options")
		return nil, r.classify(err)
	}
	defer rows.Close()

	options := make([]models.UIConfigOption, 0, 64)
	for rows.Next() {
		var (
			option   models.UIConfigOption
			disabled int
		)

		scanErr := rows.Scan(
			&option.ID,
			&option.Section,
			&option.Var,
			&option.Value,
			&option.Description,
			&disabled,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "uiConfigRepository.GetOptions").Msg("failed to scan option row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		option.Disabled = disabled != 0
		options = append(options, option)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "uiConfigRepository.GetOptions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	log.Debug().Int("options", len(options)).Msg("options read from uiconfig")
	return options, nil
}
