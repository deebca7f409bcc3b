// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InfoCenterTopic is a thread of the info center, the internal notice board
// shared by operators.
type InfoCenterTopic struct {
	ID          int64  `json:"id"`
	Topic       string `json:"topic"`
	Description string `json:"description"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  int64     `json:"created_by"`
	ModifiedBy int64     `json:"modified_by"`

	// Closed topics accept no new posts.
	Closed bool `json:"closed"`
	// ClosedAt is zero while the topic is open.
	ClosedAt time.Time `json:"closed_at"`
	ClosedBy int64     `json:"closed_by,omitempty"`
	// ClosedByLogin is resolved from the users table; empty when unknown.
	ClosedByLogin string `json:"closed_by_login,omitempty"`
}

// InfoCenterPost is a single message posted in a topic.
type InfoCenterPost struct {
	ID      int64  `json:"id"`
	TopicID int64  `json:"topic_id"`
	Post    string `json:"post"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`

	// CreatedByLogin and ModifiedByLogin are resolved from the users table.
	CreatedByLogin  string `json:"created_by_login,omitempty"`
	ModifiedByLogin string `json:"modified_by_login,omitempty"`
}

// InfoCenterThread is the short view of a topic: the topic itself and its
// most recent posts, newest first.
type InfoCenterThread struct {
	Topic InfoCenterTopic  `json:"topic"`
	Posts []InfoCenterPost `json:"posts"`
}
