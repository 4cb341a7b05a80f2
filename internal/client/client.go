// Package client is a typed HTTP client for the canteen server. Every
// method maps one to one onto a server endpoint and translates error
// responses back into the sentinel taxonomy.
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
	"time"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

const defaultTimeout = 10 * time.Second

// Client talks to one canteen server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewWithHTTPClient allows injecting the underlying http.Client, used
// by tests with httptest servers.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// errorBody is the server's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// sentinelForStatus reverses the server's status mapping. Codes that
// cover several server-side sentinels collapse to one representative;
// the server's message is kept in the wrap for display.
func sentinelForStatus(statusCode int, message string) error {
	var sentinel error
	switch statusCode {
	case http.StatusNotFound:
		sentinel = apperrors.ErrNotFound
	case http.StatusBadRequest:
		sentinel = apperrors.ErrValidation
	case http.StatusConflict:
		sentinel = apperrors.ErrConflict
	case http.StatusUnauthorized:
		sentinel = apperrors.ErrWrongPin
	case http.StatusForbidden:
		sentinel = apperrors.ErrForbidden
	default:
		sentinel = apperrors.ErrTransport
	}
	return fmt.Errorf("%s: %w", message, sentinel)
}

func (c *Client) do(ctx context.Context, method, path string, role models.Role, body, target interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("X-Actor-Role", string(role))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return sentinelForStatus(resp.StatusCode, envelope.Error)
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w: %v", apperrors.ErrTransport, err)
	}
	return nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

// Categories fetches all menu categories.
func (c *Client) Categories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := c.do(ctx, http.MethodGet, "/menu/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// MenuItems fetches all available menu items.
func (c *Client) MenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu/items", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MenuItemsByCategory fetches the available items in one category.
func (c *Client) MenuItemsByCategory(ctx context.Context, categoryID int) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	path := "/menu/category/" + strconv.Itoa(categoryID) + "/items"
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchMenuItems fetches available items matching the query.
func (c *Client) SearchMenuItems(ctx context.Context, query string) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	path := "/menu/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemByID resolves one item by scanning the available menu. Items the
// server no longer lists come back as ErrNotFound, which the cart
// treats as stale.
func (c *Client) ItemByID(ctx context.Context, id int) (*models.MenuItem, error) {
	items, err := c.MenuItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("menu item %d: %w", id, apperrors.ErrNotFound)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetItemAvailability toggles an item on or off the menu. Admin only.
func (c *Client) SetItemAvailability(ctx context.Context, role models.Role, itemID int, available bool) (*models.MenuItem, error) {
	var item models.MenuItem
	path := "/menu/items/" + strconv.Itoa(itemID) + "/availability"
	if err := c.do(ctx, http.MethodPatch, path, role, availabilityRequest{Available: available}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type registerRequest struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

// Register validates a new account's ID and name. The account is not
// created until SetPin completes the flow.
func (c *Client) Register(ctx context.Context, id, name string, role models.Role) (*service.PendingRegistration, error) {
	var pending service.PendingRegistration
	req := registerRequest{ID: id, Name: name, Role: role}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

type setPinRequest struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	PIN  string      `json:"pin"`
}

// SetPin completes registration and returns the new session.
func (c *Client) SetPin(ctx context.Context, pending *service.PendingRegistration, pin string) (*models.Session, error) {
	var session models.Session
	req := setPinRequest{ID: pending.ID, Name: pending.Name, Role: pending.Role, PIN: pin}
	if err := c.do(ctx, http.MethodPost, "/auth/pin", "", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

type loginRequest struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role"`
	PIN  string      `json:"pin"`
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, id string, role models.Role, pin string) (*models.Session, error) {
	var session models.Session
	req := loginRequest{ID: id, Role: role, PIN: pin}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SubmitOrder places an order.
func (c *Client) SubmitOrder(ctx context.Context, req service.SubmitOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", "", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists all orders, newest first. An empty student filters nothing.
func (c *Client) Orders(ctx context.Context, student string) ([]*models.Order, error) {
	var orders []*models.Order
	path := "/orders"
	if student != "" {
		path += "?student=" + url.QueryEscape(student)
	}
	if err := c.do(ctx, http.MethodGet, path, "", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one order by ID.
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, "", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceOrder moves an order to its next status. Admin only.
func (c *Client) AdvanceOrder(ctx context.Context, role models.Role, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+id+"/advance", role, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment marks an order's payment as verified. Admin only.
func (c *Client) VerifyPayment(ctx context.Context, role models.Role, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+id+"/verify-payment", role, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
