// Package client provides an HTTP client for the carpet REST API.
package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/calc"
	"github.com/evcraddock/carpet/internal/property"
)

// Client is an HTTP client for the carpet API.
type Client struct {
	http *resty.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type apiError struct {
	Error string `json:"error"`
}

// Calculate asks the server to compute rooms, totals and layout for in.
func (c *Client) Calculate(in area.Input) (*calc.Result, error) {
	var res calc.Result
	resp, err := c.http.R().
		SetBody(in).
		SetResult(&res).
		SetError(&apiError{}).
		Post("/api/calculate")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &res, nil
}

// Save stores in under name on the server, replacing any existing entry.
func (c *Client) Save(name string, in area.Input) (*property.Property, error) {
	var n property.Named
	resp, err := c.http.R().
		SetBody(map[string]interface{}{"name": name, "input": in}).
		SetResult(&n).
		SetError(&apiError{}).
		Post("/api/properties")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return n.Unwrap(), nil
}

// List returns all saved properties ordered by name.
func (c *Client) List() ([]*property.Property, error) {
	var named []property.Named
	resp, err := c.http.R().
		SetResult(&named).
		SetError(&apiError{}).
		Get("/api/properties")
	if err := check(resp, err); err != nil {
		return nil, err
	}

	props := make([]*property.Property, 0, len(named))
	for _, n := range named {
		props = append(props, n.Unwrap())
	}
	return props, nil
}

// Get returns a single saved property.
func (c *Client) Get(name string) (*property.Property, error) {
	var n property.Named
	resp, err := c.http.R().
		SetPathParam("name", name).
		SetResult(&n).
		SetError(&apiError{}).
		Get("/api/properties/{name}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return n.Unwrap(), nil
}

// Compare returns the side-by-side comparison of all saved properties.
func (c *Client) Compare() ([]property.Comparison, error) {
	var rows []property.Comparison
	resp, err := c.http.R().
		SetResult(&rows).
		SetError(&apiError{}).
		Get("/api/compare")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return rows, nil
}

// Health reports whether the server answers its health check.
func (c *Client) Health() error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Get("/health")
	return check(resp, err)
}

// check turns transport failures and error responses into errors.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	if e, ok := resp.Error().(*apiError); ok && e.Error != "" {
		return fmt.Errorf("%s", e.Error)
	}
	return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode()))
}
