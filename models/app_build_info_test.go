// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		wantVersion, wantDate string
		wantCommit            string
		wantKnown             bool
	}{
		{
			name:        "all values injected",
			version:     "v1.4.0",
			date:        "2026-10-01",
			commit:      "abc123",
			wantVersion: "v1.4.0",
			wantDate:    "2026-10-01",
			wantCommit:  "abc123",
			wantKnown:   true,
		},
		{
			name:        "nothing injected",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCommit:  "N/A",
		},
		{
			name:        "only version",
			version:     "dev",
			wantVersion: "dev",
			wantDate:    "N/A",
			wantCommit:  "N/A",
			wantKnown:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCommit, info.BuildCommit())
			assert.Equal(t, tt.wantKnown, info.Known())
		})
	}
}
