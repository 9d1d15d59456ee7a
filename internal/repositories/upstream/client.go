package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portsrepo "github.com/hotelops/frontdesk_backend/internal/core/ports/repositories"
)

// Client implements the ports.SourceProvider interface over the collaborator
// HTTP APIs. Each collection lives at its own path under one base URL; the
// response body is either a bare JSON array or an object wrapping the array
// in a "data" field, depending on which collaborator is answering.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption is a functional option for configuring the upstream client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, used in tests and to
// tune timeouts.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new upstream client with the provided options
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Ensure Client implements the SourceProvider interface
var _ portsrepo.SourceProvider = (*Client)(nil)

func (c *Client) FetchRooms(ctx context.Context) ([]domain.PhysicalUnit, error) {
	var rooms []domain.PhysicalUnit
	if err := c.fetchCollection(ctx, "/api/rooms", &rooms); err != nil {
		return nil, err
	}
	for i := range rooms {
		rooms[i].Kind = domain.UnitRoom
	}
	return rooms, nil
}

func (c *Client) FetchTables(ctx context.Context) ([]domain.PhysicalUnit, error) {
	var tables []domain.PhysicalUnit
	if err := c.fetchCollection(ctx, "/api/tables", &tables); err != nil {
		return nil, err
	}
	for i := range tables {
		tables[i].Kind = domain.UnitTable
	}
	return tables, nil
}

func (c *Client) FetchBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.fetchCollection(ctx, "/api/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) FetchReservations(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := c.fetchCollection(ctx, "/api/reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) FetchOrders(ctx context.Context) ([]domain.RestaurantOrder, error) {
	var orders []domain.RestaurantOrder
	if err := c.fetchCollection(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) FetchCabBookings(ctx context.Context) ([]domain.CabBooking, error) {
	var cabs []domain.CabBooking
	if err := c.fetchCollection(ctx, "/api/cab-bookings", &cabs); err != nil {
		return nil, err
	}
	return cabs, nil
}

// fetchCollection GETs one collection endpoint and decodes the array into
// out. Transport failures and non-2xx statuses both surface as
// ErrUpstreamUnavailable so the snapshot layer can degrade uniformly.
func (c *Client) fetchCollection(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: status %d: %w", path, resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: reading body: %w", path, apperrors.ErrUpstreamUnavailable)
	}

	return decodeCollection(body, out)
}

// decodeCollection accepts either a bare array or a {"data": [...]} envelope.
func decodeCollection(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decoding collection: %w", err)
	}
	if envelope.Data == nil {
		return fmt.Errorf("decoding collection: no array found")
	}
	return json.Unmarshal(envelope.Data, out)
}
