// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-lms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckOption(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		enabled bool
	}{
		{name: "enabled option", option: "phpui.big_networks", enabled: true},
		{name: "disabled option", option: "phpui.gd_disabled", enabled: false},
		{name: "malformed name resolves through service", option: "phpui.", enabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.settings.EXPECT().Check(gomock.Any(), tt.option).Return(tt.enabled)

			rec := serve(h, http.MethodGet, "/api/config/check/"+tt.option)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got models.OptionCheck
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, models.OptionCheck{Name: tt.option, Enabled: tt.enabled}, got)
		})
	}
}

func TestCheckOption_BlankName(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/config/check/%20")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyOptionName.Error())
}
