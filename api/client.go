// Package api wraps the stock backend's REST endpoints. Calls resolve with
// decoded payloads or fail with the backend's own message when one is present
// in the response body, else a status-derived message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dasdy/stockroom/logging"
)

var logCtx = logging.PackageCtx("api")

// StatusError carries the HTTP status and the human-readable message shown to
// the operator.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var se *StatusError

	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

type Client struct {
	Inventories    *InventoriesService
	RawMaterials   *RawMaterialsService
	QualityControl *QualityControlService
	Suppliers      *SuppliersService

	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}

	c.Inventories = &InventoriesService{c: c}
	c.RawMaterials = &RawMaterialsService{c: c}
	c.QualityControl = &QualityControlService{c: c}
	c.Suppliers = &SuppliersService{c: c}

	return c
}

// do issues one request. A 204 response is treated as plain success and leaves
// out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// decodeError prefers the backend's message field over a generic status line.
func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		slog.DebugContext(logCtx, "response body carried no message", "status", resp.StatusCode)

		return &StatusError{
			Code:    resp.StatusCode,
			Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
	}

	return &StatusError{Code: resp.StatusCode, Message: body.Message}
}
