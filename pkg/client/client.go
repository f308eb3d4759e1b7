// Package client talks to the event-directory backend. The backend exposes
// two read endpoints: the category list and the event collection.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/logging"
)

// Kind distinguishes the ways a fetch can fail.
type Kind int

const (
	// KindNetwork covers requests that never produced a usable response:
	// transport errors, timeouts, and non-2xx statuses.
	KindNetwork Kind = iota
	// KindDecode covers responses whose body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Error is the failure type returned by all client calls.
type Error struct {
	Kind Kind
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("client: %s failure fetching %s: %v", e.Kind, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// requestTimeout bounds every request so a dead backend fails over to the
// normal error path instead of hanging the caller.
const requestTimeout = 15 * time.Second

// Client fetches from a single backend base URL.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the given base URL, for example
// "https://events.example.org".
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Categories fetches the category directory. Order is the backend's.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.get(ctx, c.base+"/events/categories", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Events fetches the event collection, scoped to category when non-empty.
// The backend partitions events by registration window and pre-sorts each
// bucket ascending by event start.
func (c *Client) Events(ctx context.Context, category string) (*event.Collection, error) {
	q := url.Values{}
	q.Set("sort", "time")
	if category != "" {
		q.Set("category", category)
	}
	var col event.Collection
	if err := c.get(ctx, c.base+"/events?"+q.Encode(), &col); err != nil {
		return nil, err
	}
	return &col, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Kind: KindNetwork, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	logging.Debug("fetch start", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Error("fetch failed", err, "url", u)
		return &Error{Kind: KindNetwork, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := errors.New(resp.Status)
		logging.Error("fetch returned non-OK status", err, "url", u)
		return &Error{Kind: KindNetwork, URL: u, Err: err}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logging.Error("fetch body decode failed", err, "url", u)
		return &Error{Kind: KindDecode, URL: u, Err: err}
	}

	logging.Debug("fetch success", "url", u)
	return nil
}
