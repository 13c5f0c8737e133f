package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"masterfile/internal/domain/employee"
)

// NetworkError covers every failed call uniformly: transport errors and any
// non-2xx status look the same to callers. Status is zero when the request
// never got a response. There is no retry; a failure surfaces immediately.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client talks to the records backend. All operations are single,
// independent HTTP calls.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches all records in backend order.
func (c *Client) List(ctx context.Context) ([]employee.Employee, error) {
	const op = "list employees"
	resp, err := c.send(ctx, op, http.MethodGet, "/api/employees", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var employees []employee.Employee
	if err := json.NewDecoder(resp.Body).Decode(&employees); err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	return employees, nil
}

// Create sends a new record. The caller re-fetches to observe server-set
// state; the response body is not interpreted.
func (c *Client) Create(ctx context.Context, emp employee.Employee) error {
	resp, err := c.send(ctx, "create employee", http.MethodPost, "/api/employees", emp)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// Update replaces the record identified by empID. A missing record surfaces
// as the same NetworkError as any other failure.
func (c *Client) Update(ctx context.Context, empID string, emp employee.Employee) error {
	resp, err := c.send(ctx, "update employee", http.MethodPut, "/api/employees/"+url.PathEscape(empID), emp)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// Delete removes the record identified by empID.
func (c *Client) Delete(ctx context.Context, empID string) error {
	resp, err := c.send(ctx, "delete employee", http.MethodDelete, "/api/employees/"+url.PathEscape(empID), nil)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *Client) send(ctx context.Context, op, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &NetworkError{Op: op, Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp)
		return nil, &NetworkError{Op: op, Status: resp.StatusCode}
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
