// Package client submits contact forms to a running contact-api.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osa911/contact-api/internal/api/dto/common"
	"github.com/osa911/contact-api/internal/api/dto/v1/contact"
)

// Result is the decoded server answer together with its status code.
type Result struct {
	StatusCode int
	Response   common.APIResponse
}

// OK reports whether the submission was accepted.
func (r *Result) OK() bool {
	return r.StatusCode == http.StatusOK && r.Response.Success
}

type ContactClient struct {
	baseURL string
	http    *http.Client
}

func NewContactClient(baseURL string, httpClient *http.Client) *ContactClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ContactClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Submit posts req to /api/contact. Non-2xx answers are not errors as long as
// the body decodes; transport and decoding failures are.
func (c *ContactClient) Submit(ctx context.Context, req contact.ContactRequest) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to submit contact form: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	result := &Result{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &result.Response); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	return result, nil
}
