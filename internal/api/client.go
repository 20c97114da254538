package api

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

	"skycast/internal/flight"
	"skycast/internal/telemetry"
)

// Client talks to the Windbreaker prediction backend. Every operation is
// single-shot: no retry, no de-duplication, only the transport timeout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given backend base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LoginResponse is the body of a successful POST /api/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserName    string `json:"user_name"`
}

// PredictDelay submits a delay-risk request. This endpoint is
// unauthenticated; no bearer token is attached.
func (c *Client) PredictDelay(ctx context.Context, req flight.DelayRequest) (flight.DelayResult, error) {
	var result flight.DelayResult
	err := c.postJSON(ctx, "predict delay", "/predict", req, "", &result)
	telemetry.CountPrediction(string(flight.KindDelay), err)
	return result, err
}

// PredictPrice submits a fare-estimate request authenticated with the
// session token. An absent or expired token surfaces as an auth error from
// the backend, never as a client-side check.
func (c *Client) PredictPrice(ctx context.Context, req flight.PriceRequest, token string) (flight.PriceResult, error) {
	var result flight.PriceResult
	err := c.postJSON(ctx, "predict price", "/api/predict-price", req, token, &result)
	telemetry.CountPrediction(string(flight.KindPrice), err)
	return result, err
}

// FetchOptions retrieves the selectable airlines and cities.
func (c *Client) FetchOptions(ctx context.Context) (flight.OptionsSet, error) {
	const op = "fetch options"
	var set flight.OptionsSet

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/options", nil)
	if err != nil {
		return set, transportError(op, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	if err := c.do(op, httpReq, &set); err != nil {
		return flight.OptionsSet{}, err
	}
	return set, nil
}

// Login exchanges credentials for a session token. The backend expects a
// form-encoded OAuth2 password grant with the email in the username field.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	const op = "login"
	var resp LoginResponse

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/login", strings.NewReader(form.Encode()))
	if err != nil {
		return resp, transportError(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	if err := c.do(op, httpReq, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, payload any, token string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return transportError(op, fmt.Errorf("failed to marshal payload: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return transportError(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(op, httpReq, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return transportError(op, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return statusError(op, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportError(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
