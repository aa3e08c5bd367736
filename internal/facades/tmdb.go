package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
)

const requestTimeout = 10 * time.Second

// Error variables
var (
	// ErrMovieNotFound is returned when the upstream catalog has no such title.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrTMDBTimeout is returned when the upstream request exceeds the client timeout.
	ErrTMDBTimeout = errors.New("tmdb request timed out")
)

// TMDBFacade fetches movie data from the TMDB HTTP API and maps it to
// stable DTOs so callers are insulated from upstream schema drift.
type TMDBFacade struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewTMDBFacade creates a new facade for the given API base URL and key.
func NewTMDBFacade(baseURL, apiKey string) *TMDBFacade {
	return &TMDBFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// tmdbMovie is the raw upstream shape of a single list item.
type tmdbMovie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
}

// tmdbPage is the raw upstream shape of a paginated listing.
type tmdbPage struct {
	Results      []tmdbMovie `json:"results"`
	Page         int         `json:"page"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int64       `json:"total_results"`
}

// tmdbDetails is the raw upstream shape of the single-movie endpoint.
type tmdbDetails struct {
	tmdbMovie
	Genres     []models.Genre `json:"genres"`
	Runtime    int64          `json:"runtime"`
	Tagline    string         `json:"tagline"`
	Budget     int64          `json:"budget"`
	Revenue    int64          `json:"revenue"`
	Popularity float64        `json:"popularity"`
	Companies  []struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		LogoPath string `json:"logo_path"`
	} `json:"production_companies"`
}

// GetTrendingMovies fetches the weekly trending listing.
func (f *TMDBFacade) GetTrendingMovies(ctx context.Context, page int) (*models.PaginatedMovies, error) {
	return f.listMovies(ctx, "/trending/movie/week", page, nil)
}

// GetPopularMovies fetches the popular listing.
func (f *TMDBFacade) GetPopularMovies(ctx context.Context, page int) (*models.PaginatedMovies, error) {
	return f.listMovies(ctx, "/movie/popular", page, nil)
}

// GetTopRatedMovies fetches the top-rated listing.
func (f *TMDBFacade) GetTopRatedMovies(ctx context.Context, page int) (*models.PaginatedMovies, error) {
	return f.listMovies(ctx, "/movie/top_rated", page, nil)
}

// SearchMovies fetches a page of search results for the given query.
func (f *TMDBFacade) SearchMovies(ctx context.Context, query string, page int) (*models.PaginatedMovies, error) {
	extra := url.Values{}
	extra.Set("query", query)
	return f.listMovies(ctx, "/search/movie", page, extra)
}

// GetMovieDetails fetches a single title with the extended detail fields.
func (f *TMDBFacade) GetMovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error) {
	var raw tmdbDetails
	if err := f.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &raw); err != nil {
		logger.Log.Errorw("failed to fetch movie details", "movie_id", movieID, "error", err)
		return nil, err
	}

	details := &models.MovieDetails{
		Movie:               mapMovie(raw.tmdbMovie),
		Genres:              raw.Genres,
		Runtime:             raw.Runtime,
		Tagline:             raw.Tagline,
		Budget:              raw.Budget,
		Revenue:             raw.Revenue,
		Popularity:          raw.Popularity,
		ProductionCompanies: make([]models.ProductionCompany, 0, len(raw.Companies)),
	}
	if details.Genres == nil {
		details.Genres = []models.Genre{}
	}
	for _, c := range raw.Companies {
		details.ProductionCompanies = append(details.ProductionCompanies, models.ProductionCompany{
			ID:       c.ID,
			Name:     c.Name,
			LogoPath: c.LogoPath,
		})
	}

	return details, nil
}

func (f *TMDBFacade) listMovies(ctx context.Context, path string, page int, extra url.Values) (*models.PaginatedMovies, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("page", strconv.Itoa(page))

	var raw tmdbPage
	if err := f.get(ctx, path, params, &raw); err != nil {
		logger.Log.Errorw("failed to fetch movie listing", "path", path, "page", page, "error", err)
		return nil, err
	}

	out := &models.PaginatedMovies{
		Results:      make([]models.Movie, 0, len(raw.Results)),
		Page:         raw.Page,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}
	for _, m := range raw.Results {
		out.Results = append(out.Results, mapMovie(m))
	}

	return out, nil
}

// get performs an authenticated GET against the upstream API and decodes
// the JSON body into dst.
func (f *TMDBFacade) get(ctx context.Context, path string, params url.Values, dst any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", f.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", f.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return ErrTMDBTimeout
		}
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrMovieNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func mapMovie(m tmdbMovie) models.Movie {
	return models.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		ReleaseDate:  m.ReleaseDate,
	}
}
