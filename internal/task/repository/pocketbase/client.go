package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client is the HTTP wrapper for the PocketBase records API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new PocketBase HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// APIError is a non-2xx reply from the PocketBase API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pocketbase API error %d: %s", e.Status, e.Message)
}

// AuthWithPassword authenticates as an admin and stores the returned token
// on the client for subsequent requests.
func (c *Client) AuthWithPassword(ctx context.Context, identity, password string) error {
	body, err := json.Marshal(map[string]string{
		"identity": identity,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal auth request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/admins/auth-with-password", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build auth request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call pocketbase auth API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.apiError(resp)
	}

	var authResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return fmt.Errorf("failed to decode pocketbase auth response: %w", err)
	}
	c.token = authResp.Token
	return nil
}

// CreateRecord creates a new record in the given collection.
func (c *Client) CreateRecord(ctx context.Context, collection string, rec TaskRecord) (*TaskRecord, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, collection)

	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create record request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create record request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call pocketbase create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var created TaskRecord
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode pocketbase create response: %w", err)
	}
	return &created, nil
}

// GetRecord fetches a single record by its id.
func (c *Client) GetRecord(ctx context.Context, collection, id string) (*TaskRecord, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get record request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call pocketbase get API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var rec TaskRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode pocketbase get response: %w", err)
	}
	return &rec, nil
}

// ListQuery holds the query parameters for a record listing.
type ListQuery struct {
	Page    int
	PerPage int
	Filter  string
	Sort    string
}

// ListResponse is the paginated listing reply from PocketBase.
type ListResponse struct {
	Page       int          `json:"page"`
	PerPage    int          `json:"perPage"`
	TotalItems int          `json:"totalItems"`
	TotalPages int          `json:"totalPages"`
	Items      []TaskRecord `json:"items"`
}

// ListRecords lists records with filtering, sorting and pagination.
func (c *Client) ListRecords(ctx context.Context, collection string, q ListQuery) (*ListResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("perPage", strconv.Itoa(q.PerPage))
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	endpoint := fmt.Sprintf("%s/api/collections/%s/records?%s", c.baseURL, collection, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list records request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call pocketbase list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var listResp ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode pocketbase list response: %w", err)
	}
	return &listResp, nil
}

// UpdateRecord patches the given fields of an existing record.
func (c *Client) UpdateRecord(ctx context.Context, collection, id string, patch map[string]any) (*TaskRecord, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update record request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build update record request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call pocketbase update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var rec TaskRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode pocketbase update response: %w", err)
	}
	return &rec, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
}

// apiError drains the body into an APIError, preserving PocketBase's own
// message when it sends one.
func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var pbErr struct {
		Message string `json:"message"`
	}
	msg := string(raw)
	if err := json.Unmarshal(raw, &pbErr); err == nil && pbErr.Message != "" {
		msg = pbErr.Message
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}

// TaskRecord is the PocketBase record shape for the tasks collection. Date
// fields carry the store's native datetime format, not RFC3339.
type TaskRecord struct {
	ID                    string  `json:"id,omitempty"`
	Title                 string  `json:"title"`
	Outcome               string  `json:"outcome"`
	Section               string  `json:"section"`
	Intensity             int     `json:"intensity"`
	Tags                  string  `json:"tags"`
	DueDate               string  `json:"dueDate"`
	EstimatedTime         float64 `json:"estimatedTime"`
	IsTask                bool    `json:"isTask"`
	OriginalTranscription string  `json:"originalTranscription"`
	ProcessedAt           string  `json:"processedAt"`
	LLMModel              string  `json:"llmModel"`
	ProcessingConfidence  float64 `json:"processingConfidence"`
	Status                string  `json:"status"`
	UserID                string  `json:"userId,omitempty"`
	Created               string  `json:"created,omitempty"`
	Updated               string  `json:"updated,omitempty"`
}
