// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHiddenBy(t *testing.T) {
	tests := []struct {
		name       string
		hidden     bool
		wantStatus int
		wantBody   string
	}{
		{name: "option true hides the page", hidden: true, wantStatus: http.StatusNotFound},
		{name: "option false passes through", hidden: false, wantStatus: http.StatusOK, wantBody: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.settings.EXPECT().Check(gomock.Any(), "privileges.hide_summaries").Return(tt.hidden)

			rec := httptest.NewRecorder()
			h.hiddenBy("privileges.hide_summaries")(okHandler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
