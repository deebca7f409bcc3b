// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
// A bare host:port address is treated as plain http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) CheckOption(ctx context.Context, name string) (models.OptionCheck, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/api/config/check/{name}")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.CheckOption").Str("option", name).Msg("request failed")
		return models.OptionCheck{}, fmt.Errorf("check option request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OptionCheck{}, err
	}

	var check models.OptionCheck
	if err = json.Unmarshal(resp.Body(), &check); err != nil {
		return models.OptionCheck{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return check, nil
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.GetServerVersion").Msg("request failed")
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) GetShortThread(ctx context.Context, topicID int64) (models.InfoCenterThread, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(topicID, 10)).
		Get("/api/infocenter/{id}/short")
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.GetShortThread").Int64("topic_id", topicID).Msg("request failed")
		return models.InfoCenterThread{}, fmt.Errorf("get short thread request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InfoCenterThread{}, err
	}

	var thread models.InfoCenterThread
	if err = json.Unmarshal(resp.Body(), &thread); err != nil {
		return models.InfoCenterThread{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return thread, nil
}
