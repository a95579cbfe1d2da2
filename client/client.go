// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-notes/models"
)

// DefaultBaseURL is where the API listens by default
const DefaultBaseURL = "http://localhost:3000"

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Client talks to the Quickly Notes REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	newKey     func() string
}

type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithKeyGenerator replaces the random UUID idempotency keys
func WithKeyGenerator(gen func() string) Option {
	return func(c *Client) {
		c.newKey = gen
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		newKey:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &projects)
	return projects, err
}

func (c *Client) CreateProject(ctx context.Context, name string) (models.Project, error) {
	var p models.Project
	err := c.do(ctx, http.MethodPost, "/projects", nil, models.CreateProjectRequest{Name: name}, &p)
	return p, err
}

func (c *Client) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var p models.Project
	err := c.do(ctx, http.MethodGet, projectPath(id), nil, nil, &p)
	return p, err
}

func (c *Client) RenameProject(ctx context.Context, id int64, name string) (models.Project, error) {
	var p models.Project
	err := c.do(ctx, http.MethodPatch, projectPath(id), nil, models.UpdateProjectRequest{Name: &name}, &p)
	return p, err
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, projectPath(id), nil, nil, nil)
}

// ListNotes lists a project's notes. Zero-valued Cursor, Limit and Search
// are left out of the query.
func (c *Client) ListNotes(ctx context.Context, params models.ListNotesParams) ([]models.Note, error) {
	q := url.Values{}
	q.Set("projectId", strconv.FormatInt(params.ProjectID, 10))
	if params.Cursor != 0 {
		q.Set("cursor", strconv.FormatInt(params.Cursor, 10))
	}
	if params.Limit != 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	var notes []models.Note
	err := c.do(ctx, http.MethodGet, "/notes?"+q.Encode(), nil, nil, &notes)
	return notes, err
}

// CreateNote sends the note with a fresh idempotency key
func (c *Client) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	return c.CreateNoteWithKey(ctx, req, c.newKey())
}

// CreateNoteWithKey lets a caller reuse a key when retrying the same create
func (c *Client) CreateNoteWithKey(ctx context.Context, req models.CreateNoteRequest, key string) (models.Note, error) {
	var n models.Note
	headers := map[string]string{models.IdempotencyKeyHeader: key}
	err := c.do(ctx, http.MethodPost, "/notes", headers, req, &n)
	return n, err
}

func (c *Client) GetNote(ctx context.Context, id int64) (models.Note, error) {
	var n models.Note
	err := c.do(ctx, http.MethodGet, notePath(id), nil, nil, &n)
	return n, err
}

func (c *Client) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error) {
	var n models.Note
	err := c.do(ctx, http.MethodPut, notePath(id), nil, patch, &n)
	return n, err
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, notePath(id), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError prefers the API's message, then its error text, then the
// bare status text
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func projectPath(id int64) string {
	return "/projects/" + strconv.FormatInt(id, 10)
}

func notePath(id int64) string {
	return "/notes/" + strconv.FormatInt(id, 10)
}
