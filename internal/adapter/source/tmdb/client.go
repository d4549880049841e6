package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/cartelera/internal/domain"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultLanguage = "es-ES"

	// genericNetworkMessage is used when a failed response carries no status_message
	genericNetworkMessage = "Unexpected TMDb network error"
)

// APIError is a failed TMDb request. Message is the API's status_message when
// it sent one. Err holds a domain sentinel when the failure maps to one.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client implements domain.MovieDataSource against the TMDb v3 API
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDb API client
func NewClient(baseURL, apiKey, language string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = defaultLanguage
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a single authenticated request and returns the body.
// There is no retry: one call, one request.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}

	c.logger.Debug("tmdb request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("tmdb request failed", "path", path, "error", err)
		return nil, &APIError{Message: err.Error(), Err: domain.ErrServerOffline}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, respBody)
		c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	return respBody, nil
}

// newAPIError builds an APIError from a non-2xx response
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: genericNetworkMessage}

	var status StatusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		apiErr.Message = status.StatusMessage
	}

	switch statusCode {
	case http.StatusUnauthorized:
		apiErr.Err = domain.ErrAuthFailed
	case http.StatusNotFound:
		apiErr.Err = domain.ErrNotFound
	}
	return apiErr
}

// getJSON issues a GET and decodes the response into dest
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// getMovieList fetches one of the list endpoints and maps its results
func (c *Client) getMovieList(ctx context.Context, path string) ([]domain.Movie, error) {
	var resp ListResponse
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return MapMovies(resp.Results), nil
}

// GetPopular returns the popular movies list
func (c *Client) GetPopular(ctx context.Context) ([]domain.Movie, error) {
	return c.getMovieList(ctx, "/movie/popular")
}

// GetTopRated returns the top rated movies list
func (c *Client) GetTopRated(ctx context.Context) ([]domain.Movie, error) {
	return c.getMovieList(ctx, "/movie/top_rated")
}

// GetUpcoming returns the upcoming movies list
func (c *Client) GetUpcoming(ctx context.Context) ([]domain.Movie, error) {
	return c.getMovieList(ctx, "/movie/upcoming")
}

// GetNowPlaying returns the movies currently in theaters
func (c *Client) GetNowPlaying(ctx context.Context) ([]domain.Movie, error) {
	return c.getMovieList(ctx, "/movie/now_playing")
}

// GetMovieByID returns the detail record for a movie
func (c *Client) GetMovieByID(ctx context.Context, id int) (*domain.MovieDetail, error) {
	var resp MovieDetailResponse
	if err := c.getJSON(ctx, "/movie/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return MapMovieDetail(resp), nil
}

// GetCreditsByMovieID returns the cast of a movie
func (c *Client) GetCreditsByMovieID(ctx context.Context, id int) ([]domain.Actor, error) {
	var resp CreditsResponse
	path := fmt.Sprintf("/movie/%d/credits", id)
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return MapCast(resp.Cast), nil
}

// GetRecommendationsByMovieID returns movies recommended from a movie
func (c *Client) GetRecommendationsByMovieID(ctx context.Context, id int) ([]domain.Movie, error) {
	return c.getMovieList(ctx, fmt.Sprintf("/movie/%d/recommendations", id))
}

// CreateGuestSession opens an anonymous session for rating
func (c *Client) CreateGuestSession(ctx context.Context) (string, error) {
	var resp GuestSessionResponse
	if err := c.getJSON(ctx, "/authentication/guest_session/new", nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.GuestSessionID == "" {
		return "", errors.New("guest session was not granted")
	}
	c.logger.Debug("guest session created", "expiresAt", resp.ExpiresAt)
	return resp.GuestSessionID, nil
}

// RateMovie submits a rating for a movie under the given guest session
func (c *Client) RateMovie(ctx context.Context, id int, rating float64, sessionID string) error {
	query := url.Values{}
	query.Set("guest_session_id", sessionID)

	path := fmt.Sprintf("/movie/%d/rating", id)
	body, err := c.doRequest(ctx, http.MethodPost, path, query, RatingRequest{Value: rating})
	if err != nil {
		return err
	}

	var status StatusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.Success != nil && !*status.Success {
		msg := status.StatusMessage
		if msg == "" {
			msg = genericNetworkMessage
		}
		return &APIError{StatusCode: status.StatusCode, Message: msg}
	}
	return nil
}
