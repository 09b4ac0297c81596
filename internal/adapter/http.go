// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-threat-cache/internal/config"
	"github.com/MKhiriev/go-threat-cache/internal/logger"
	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/go-resty/resty/v2"
)

const apiKeyHeader = "X-Api-Key"

// httpThreatAPI is the HTTP/JSON implementation of [DiffService] and
// [VerifyService].
type httpThreatAPI struct {
	client *resty.Client

	logger *logger.Logger
}

// HTTPThreatAPI bundles both remote collaborator interfaces implemented by
// the HTTP transport.
type HTTPThreatAPI interface {
	DiffService
	VerifyService
}

// NewHTTPThreatAPI constructs the HTTP/JSON client for the remote threat-list
// service. It normalises and validates the base URL from adapterCfg.Address,
// configures the request timeout, and attaches the API key plus client
// identification headers to every request.
//
// Returns an error if adapterCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPThreatAPI(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (HTTPThreatAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid threat service address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, adapterCfg.APIKey).
		SetHeader("X-Client-Id", appCfg.ClientID).
		SetHeader("X-Client-Version", appCfg.ClientVersion)

	return &httpThreatAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

type diffRequestBody struct {
	Category     models.Category        `json:"category"`
	VersionToken []byte                 `json:"version_token,omitempty"`
	Constraints  models.SizeConstraints `json:"constraints"`
}

type diffResponseBody struct {
	ResponseType    string               `json:"response_type"`
	NewVersionToken []byte               `json:"new_version_token"`
	Additions       []models.PrefixBlock `json:"additions"`
	Removals        *removalsBody        `json:"removals,omitempty"`
	Checksum        []byte               `json:"checksum"`
	NextDiffEpoch   int64                `json:"recommended_next_diff"`
}

type removalsBody struct {
	Indices []int `json:"indices"`
}

// ComputeDiff implements [DiffService]. It POSTs the category's version token
// and constraints to /v1/threatLists:computeDiff and maps the JSON response
// back to a [models.DiffResponse]. Network errors and non-2xx statuses map to
// the package sentinel errors; an unrecognised response_type is reported as a
// protocol error.
func (h *httpThreatAPI) ComputeDiff(ctx context.Context, req models.DiffRequest) (models.DiffResponse, error) {
	body := diffRequestBody{
		Category:     req.Category,
		VersionToken: req.VersionToken,
		Constraints:  req.Constraints,
	}

	var parsed diffResponseBody
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		Post("/v1/threatLists:computeDiff")
	if err != nil {
		return models.DiffResponse{}, fmt.Errorf("%w: compute diff request: %v", ErrServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiffResponse{}, err
	}

	out := models.DiffResponse{
		NewVersionToken: parsed.NewVersionToken,
		Additions:       parsed.Additions,
		Checksum:        parsed.Checksum,
		NextDiffAt:      time.Unix(parsed.NextDiffEpoch, 0),
	}
	if parsed.Removals != nil {
		out.RemovalIndices = parsed.Removals.Indices
	}

	switch parsed.ResponseType {
	case "RESET":
		out.Kind = models.DiffKindReset
	case "DIFF":
		out.Kind = models.DiffKindDiff
	default:
		return models.DiffResponse{}, fmt.Errorf("%w: response_type %q", ErrBadRequest, parsed.ResponseType)
	}

	return out, nil
}

type verifyRequestBody struct {
	Categories []models.Category `json:"categories"`
	Prefix     []byte            `json:"prefix"`
}

type verifyResponseBody struct {
	Threats             []threatMatchBody `json:"threats"`
	NegativeExpireEpoch int64             `json:"negative_expire_at,omitempty"`
}

type threatMatchBody struct {
	FullHash    []byte            `json:"full_hash"`
	Categories  []models.Category `json:"categories"`
	ExpireEpoch int64             `json:"expire_at"`
}

// FindFullHashes implements [VerifyService]. It POSTs the matched prefix and
// the categories of interest to /v1/fullHashes:find. A missing
// negative_expire_at field leaves NegativeExpiresAt zero, meaning no negative
// cache entry may be recorded for the prefix.
func (h *httpThreatAPI) FindFullHashes(ctx context.Context, req models.VerifyRequest) (models.VerifyResponse, error) {
	body := verifyRequestBody{Categories: req.Categories, Prefix: req.Prefix}

	var parsed verifyResponseBody
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		Post("/v1/fullHashes:find")
	if err != nil {
		return models.VerifyResponse{}, fmt.Errorf("%w: find full hashes request: %v", ErrServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyResponse{}, err
	}

	out := models.VerifyResponse{}
	for _, th := range parsed.Threats {
		out.Threats = append(out.Threats, models.ThreatMatch{
			FullHash:   th.FullHash,
			Categories: th.Categories,
			ExpiresAt:  time.Unix(th.ExpireEpoch, 0),
		})
	}
	if parsed.NegativeExpireEpoch > 0 {
		out.NegativeExpiresAt = time.Unix(parsed.NegativeExpireEpoch, 0)
	}

	return out, nil
}
