// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	uiConfigTable        = "uiconfig"
	infoCenterTable      = "info_center t"
	infoCenterPostsTable = "info_center_post i"

	closedByLogin   = "(SELECT login FROM users WHERE users.id = t.closeduser) AS closedname"
	createdByLogin  = "(SELECT login FROM users WHERE users.id = i.cuser) AS clogin"
	modifiedByLogin = "(SELECT login FROM users WHERE users.id = i.muser) AS mlogin"
)

// buildGetOptionsQuery selects every enabled uiconfig row, ordered so that a
// dump of the table is stable.
func buildGetOptionsQuery(builder sq.StatementBuilderType) (string, []any, error) {
	query, args, err := builder.
		Select("id", "section", "var", "value", "description", "disabled").
		From(uiConfigTable).
		Where(sq.Eq{"disabled": 0}).
		OrderBy("section", "var").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetTopicQuery(builder sq.StatementBuilderType, topicID int64) (string, []any, error) {
	query, args, err := builder.
		Select(
			"t.id", "t.topic", "t.description",
			"t.cdate", "t.mdate", "t.cuser", "t.muser",
			"t.closed", "t.closeddate", "t.closeduser",
			closedByLogin,
		).
		From(infoCenterTable).
		Where(sq.Eq{"t.id": topicID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetLatestPostsQuery selects the newest posts of a topic first.
func buildGetLatestPostsQuery(builder sq.StatementBuilderType, topicID int64, limit uint64) (string, []any, error) {
	query, args, err := builder.
		Select(
			"i.id", "i.infoid", "i.post", "i.cdate", "i.mdate",
			createdByLogin,
			modifiedByLogin,
		).
		From(infoCenterPostsTable).
		Where(sq.Eq{"i.infoid": topicID}).
		OrderBy("i.cdate DESC", "i.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
