// Package client is the REST client for the farmdesk backend: one
// Resource per collection plus the presigned photo upload flow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"farmdesk/entities"
	"farmdesk/pkg/logging"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

type apiError struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

type Option func(*Client)

// WithHTTPClient replaces the default client. The default has no timeout;
// callers bound calls with their context.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

func WithLogger(l *logrus.Entry) Option { return func(c *Client) { c.log = l } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Tasks() *Resource[entities.Task] { return &Resource[entities.Task]{c: c, path: "/tasks"} }

func (c *Client) Supervisors() *Resource[entities.Supervisor] {
	return &Resource[entities.Supervisor]{c: c, path: "/supervisors"}
}

func (c *Client) Plots() *Resource[entities.Plot] { return &Resource[entities.Plot]{c: c, path: "/plots"} }

func (c *Client) Inventory() *Resource[entities.InventoryItem] {
	return &Resource[entities.InventoryItem]{c: c, path: "/inventory"}
}

// RequestUpload asks the backend for a presigned upload descriptor.
func (c *Client) RequestUpload(ctx context.Context, req entities.UploadRequest) (*entities.PresignedUpload, error) {
	var out entities.PresignedUpload
	if err := c.do(ctx, http.MethodPost, "/upload-url", req, &out); err != nil {
		return nil, fmt.Errorf("request upload url: %w", err)
	}
	return &out, nil
}

// do sends body as JSON (when non-nil) and decodes the reply into out (when
// non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Debug("transport error")
		return err
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{"method": method, "path": path, "status": resp.StatusCode}).Debug("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var ae apiError
		if json.Unmarshal(errorBody, &ae) == nil && ae.Error != "" {
			se.Message = ae.Error
		} else {
			se.Message = strings.TrimSpace(string(errorBody))
		}
		return se
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Resource issues list/create/update/delete for one collection.
type Resource[T any] struct {
	c    *Client
	path string
}

func (r *Resource[T]) Name() string { return strings.TrimPrefix(r.path, "/") }

// List fetches the full collection; there is no pagination.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.Name(), err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create posts draft and returns the stored record with its new id.
func (r *Resource[T]) Create(ctx context.Context, draft T) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, draft, &out); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.Name(), err)
	}
	return &out, nil
}

// Update PUTs a full record or a patch struct; the server merges it.
func (r *Resource[T]) Update(ctx context.Context, id uint, patch any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), patch, &out); err != nil {
		return nil, fmt.Errorf("update %s %d: %w", r.Name(), id, err)
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	if err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete %s %d: %w", r.Name(), id, err)
	}
	return nil
}

func (r *Resource[T]) itemPath(id uint) string {
	return r.path + "/" + strconv.FormatUint(uint64(id), 10)
}
