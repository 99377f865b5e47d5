package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"
	defaultTimeout  = 30 * time.Second
	userAgent       = "Marquee/1.0"
)

var (
	_ domain.CatalogRepository  = (*Client)(nil)
	_ domain.SearchRepository   = (*Client)(nil)
	_ domain.MetadataRepository = (*Client)(nil)
)

// Client implements domain.CatalogRepository, domain.SearchRepository and
// domain.MetadataRepository against the TMDB v3 API
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Options configures a Client. Zero values fall back to TMDB defaults.
type Options struct {
	BaseURL  string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// NewClient creates a new TMDB API client
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		apiKey:   opts.APIKey,
		language: opts.Language,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		logger: logger,
	}
}

// usesBearer reports whether the key is a v4 read access token (a JWT)
func (c *Client) usesBearer() bool {
	return strings.HasPrefix(c.apiKey, "eyJ")
}

// doRequest performs an authenticated GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("language", c.language)
	if !c.usesBearer() {
		query.Set("api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewError(domain.KindNetwork, op, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.usesBearer() {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("tmdb request", "op", op, "path", path, "page", query.Get("page"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "op", op, "error", err)
		return nil, domain.NewError(domain.KindNetwork, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewError(domain.KindNetwork, op, fmt.Errorf("failed to read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.NewError(domain.KindAuth, op, statusError(body, resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NewError(domain.KindNotFound, op, statusError(body, resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("tmdb request error", "op", op, "status", resp.StatusCode, "body", truncate(string(body), 200))
		return nil, domain.NewError(domain.KindNetwork, op, statusError(body, resp.StatusCode))
	}

	// Some failures come back as 200 with {"success": false}
	var status statusResponse
	if json.Unmarshal(body, &status) == nil && status.Success != nil && !*status.Success {
		return nil, domain.NewError(domain.KindNotFound, op, errors.New(status.message()))
	}

	return body, nil
}

// decode parses body into dst, classifying failures as network errors
func (c *Client) decode(op string, body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		c.logger.Error("JSON parse error", "op", op, "error", err, "bodyLen", len(body))
		return domain.NewError(domain.KindNetwork, op, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

// getPage fetches a listing endpoint; a payload without "results" is not-found
func getPage[T any](ctx context.Context, c *Client, op, path string, query url.Values) (pagedResponse[T], error) {
	var page pagedResponse[T]

	body, err := c.doRequest(ctx, op, path, query)
	if err != nil {
		return page, err
	}
	if err := c.decode(op, body, &page); err != nil {
		return page, err
	}
	if page.Results == nil {
		return page, domain.Errorf(domain.KindNotFound, op, "response has no results")
	}
	return page, nil
}

func toPage[T, R any](p pagedResponse[R], items []T) domain.Page[T] {
	return domain.Page[T]{
		Items:        items,
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

// Discover returns one page of /discover/movie
func (c *Client) Discover(ctx context.Context, q domain.DiscoverQuery) (domain.Page[domain.Movie], error) {
	p, err := getPage[MovieResult](ctx, c, "discover", "/discover/movie", DiscoverParams(q))
	if err != nil {
		return domain.Page[domain.Movie]{}, err
	}
	return toPage(p, MapMovies(p.Results)), nil
}

// Popular returns one page of /movie/popular
func (c *Client) Popular(ctx context.Context, page int) (domain.Page[domain.Movie], error) {
	query := url.Values{}
	query.Set("page", fmt.Sprint(max(page, 1)))

	p, err := getPage[MovieResult](ctx, c, "popular", "/movie/popular", query)
	if err != nil {
		return domain.Page[domain.Movie]{}, err
	}
	return toPage(p, MapMovies(p.Results)), nil
}

// SearchMovies returns one page of /search/movie
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (domain.Page[domain.Movie], error) {
	p, err := getPage[MovieResult](ctx, c, "search movie", "/search/movie", searchParams(query, page))
	if err != nil {
		return domain.Page[domain.Movie]{}, err
	}
	return toPage(p, MapMovies(p.Results)), nil
}

// SearchPeople returns one page of /search/person
func (c *Client) SearchPeople(ctx context.Context, query string, page int) (domain.Page[domain.Person], error) {
	p, err := getPage[PersonResult](ctx, c, "search person", "/search/person", searchParams(query, page))
	if err != nil {
		return domain.Page[domain.Person]{}, err
	}
	return toPage(p, MapPeople(p.Results)), nil
}

// GetMovie returns /movie/{id}
func (c *Client) GetMovie(ctx context.Context, id int) (*domain.MovieDetail, error) {
	op := fmt.Sprintf("movie %d", id)
	body, err := c.doRequest(ctx, op, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var result MovieDetailResult
	if err := c.decode(op, body, &result); err != nil {
		return nil, err
	}
	if result.ID == 0 {
		return nil, domain.Errorf(domain.KindNotFound, op, "movie not found")
	}
	return MapMovieDetail(result), nil
}

// GetMovieCredits returns the cast of /movie/{id}/credits in billing order
func (c *Client) GetMovieCredits(ctx context.Context, id int) ([]domain.CastMember, error) {
	op := fmt.Sprintf("credits %d", id)
	body, err := c.doRequest(ctx, op, fmt.Sprintf("/movie/%d/credits", id), nil)
	if err != nil {
		return nil, err
	}

	var result creditsResponse[CastResult]
	if err := c.decode(op, body, &result); err != nil {
		return nil, err
	}
	return MapCast(result.Cast), nil
}

// GetMovieReviews returns the first page of /movie/{id}/reviews
func (c *Client) GetMovieReviews(ctx context.Context, id int) ([]domain.Review, error) {
	p, err := getPage[ReviewResult](ctx, c, fmt.Sprintf("reviews %d", id), fmt.Sprintf("/movie/%d/reviews", id), nil)
	if err != nil {
		return nil, err
	}
	return MapReviews(p.Results), nil
}

// GetRecommendations returns the first page of /movie/{id}/recommendations
func (c *Client) GetRecommendations(ctx context.Context, id int) ([]domain.Movie, error) {
	p, err := getPage[MovieResult](ctx, c, fmt.Sprintf("recommendations %d", id), fmt.Sprintf("/movie/%d/recommendations", id), nil)
	if err != nil {
		return nil, err
	}
	return MapMovies(p.Results), nil
}

// GetPerson returns /person/{id}
func (c *Client) GetPerson(ctx context.Context, id int) (*domain.PersonDetail, error) {
	op := fmt.Sprintf("person %d", id)
	body, err := c.doRequest(ctx, op, fmt.Sprintf("/person/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var result PersonDetailResult
	if err := c.decode(op, body, &result); err != nil {
		return nil, err
	}
	if result.ID == 0 {
		return nil, domain.Errorf(domain.KindNotFound, op, "person not found")
	}
	return MapPersonDetail(result), nil
}

// GetPersonMovieCredits returns the movies of /person/{id}/movie_credits
func (c *Client) GetPersonMovieCredits(ctx context.Context, id int) ([]domain.Movie, error) {
	op := fmt.Sprintf("person credits %d", id)
	body, err := c.doRequest(ctx, op, fmt.Sprintf("/person/%d/movie_credits", id), nil)
	if err != nil {
		return nil, err
	}

	var result creditsResponse[MovieResult]
	if err := c.decode(op, body, &result); err != nil {
		return nil, err
	}
	return MapMovies(result.Cast), nil
}

func (s statusResponse) message() string {
	if s.StatusMessage != "" {
		return s.StatusMessage
	}
	return "request was not successful"
}

// statusError builds an error from a non-2xx body, preferring the API's status_message
func statusError(body []byte, code int) error {
	var status statusResponse
	if json.Unmarshal(body, &status) == nil && status.StatusMessage != "" {
		return fmt.Errorf("status %d: %s", code, status.StatusMessage)
	}
	return fmt.Errorf("unexpected status code: %d", code)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
