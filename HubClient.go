package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

const sheetsPath = "/sheets"

var HubResponseError = errors.New("unexpected hub response")

type fetchSheetsResponse struct {
	Sheets contracts.SheetList `json:"sheets"`
}

type submitResponse struct {
	Message string `json:"message"`
}

// HubClient fetches sheets from the hub and submits the processed results
type HubClient struct {
	httpClient *http.Client
	hubUrl     string
	submitUrl  string
	email      string
}

func NewHubClient(hubUrl string, submitUrl string, email string, timeout time.Duration) *HubClient {
	return &HubClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		hubUrl:    strings.TrimSuffix(hubUrl, "/"),
		submitUrl: submitUrl,
		email:     email,
	}
}

func (h *HubClient) FetchSheets(ctx context.Context) (contracts.SheetList, error) {
	url := h.hubUrl + sheetsPath

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	body, err := h.do(request)
	if err != nil {
		return nil, err
	}

	var payload fetchSheetsResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	return payload.Sheets, nil
}

func (h *HubClient) SubmitResults(ctx context.Context, results contracts.SheetList) (string, error) {
	if h.submitUrl == "" {
		return "", errors.New("submit url is not configured")
	}

	payload, err := json.Marshal(&contracts.Submission{
		Email:   h.email,
		Results: results,
	})
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, h.submitUrl, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")

	body, err := h.do(request)
	if err != nil {
		return "", err
	}

	var response submitResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%s: %w", h.submitUrl, err)
	}

	return response.Message, nil
}

func (h *HubClient) do(request *http.Request) ([]byte, error) {
	request.Header.Set("X-Request-Id", uuid.NewString())

	response, err := h.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: %w: %s", request.Method, request.URL, HubResponseError, response.Status)
	}

	return body, nil
}
