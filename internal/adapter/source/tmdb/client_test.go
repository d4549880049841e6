package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/cartelera/internal/adapter"
	"github.com/mmcdole/cartelera/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", "", 0, adapter.NullLogger()), &hits
}

func TestListEndpointsMapResults(t *testing.T) {
	paths := map[string]func(*Client) ([]domain.Movie, error){
		"/movie/popular":     func(c *Client) ([]domain.Movie, error) { return c.GetPopular(context.Background()) },
		"/movie/top_rated":   func(c *Client) ([]domain.Movie, error) { return c.GetTopRated(context.Background()) },
		"/movie/upcoming":    func(c *Client) ([]domain.Movie, error) { return c.GetUpcoming(context.Background()) },
		"/movie/now_playing": func(c *Client) ([]domain.Movie, error) { return c.GetNowPlaying(context.Background()) },
		"/movie/7/recommendations": func(c *Client) ([]domain.Movie, error) {
			return c.GetRecommendationsByMovieID(context.Background(), 7)
		},
	}

	for path, call := range paths {
		t.Run(path, func(t *testing.T) {
			client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, path, r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
				assert.Equal(t, "es-ES", r.URL.Query().Get("language"))
				io.WriteString(w, `{"page":1,"results":[{"id":10,"title":"Dune","overview":"Sand","poster_path":"/p.jpg","backdrop_path":null,"release_date":"2021-09-15","vote_average":7.8,"genre_ids":[878,12]}]}`)
			})

			movies, err := call(client)
			require.NoError(t, err)
			require.Len(t, movies, 1)
			assert.Equal(t, int32(1), atomic.LoadInt32(hits))

			m := movies[0]
			assert.Equal(t, 10, m.ID)
			assert.Equal(t, "Dune", m.Title)
			assert.Equal(t, "2021-09-15", m.ReleaseDate)
			require.NotNil(t, m.PosterPath)
			assert.Equal(t, "/p.jpg", *m.PosterPath)
			assert.Nil(t, m.BackdropPath)
			assert.Equal(t, []int{878, 12}, m.GenreIDs)
		})
	}
}

func TestMovieTitleAndDateFallbacks(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"results":[
			{"id":1,"name":"Series Name","first_air_date":"2020-01-01"},
			{"id":2},
			{"id":3,"title":"","release_date":"","first_air_date":"2019-01-01"}
		]}`)
	})

	movies, err := client.GetPopular(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 3)

	assert.Equal(t, "Series Name", movies[0].Title)
	assert.Equal(t, "2020-01-01", movies[0].ReleaseDate)

	assert.Equal(t, "Sin titulo", movies[1].Title)
	assert.Equal(t, "", movies[1].ReleaseDate)
	assert.Equal(t, []int{}, movies[1].GenreIDs)

	// Present but empty values are kept, like nullish coalescing
	assert.Equal(t, "", movies[2].Title)
	assert.Equal(t, "", movies[2].ReleaseDate)
}

func TestGetMovieByIDDerivesGenreIDs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/42", r.URL.Path)
		io.WriteString(w, `{"id":42,"title":"Inception","overview":"Dreams","poster_path":"/p.jpg","backdrop_path":"/b.jpg",
			"release_date":"2010-07-16","vote_average":8.8,"genres":[{"id":28,"name":"Accion"},{"id":878,"name":"Ciencia ficcion"}],
			"runtime":148,"tagline":null,"homepage":"https://example.com","status":"Released"}`)
	})

	detail, err := client.GetMovieByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "Inception", detail.Title)
	assert.Equal(t, []int{28, 878}, detail.GenreIDs)
	assert.Equal(t, []domain.Genre{{ID: 28, Name: "Accion"}, {ID: 878, Name: "Ciencia ficcion"}}, detail.Genres)
	require.NotNil(t, detail.Runtime)
	assert.Equal(t, 148, *detail.Runtime)
	assert.Nil(t, detail.Tagline)
	assert.Equal(t, "Released", detail.Status)
	assert.Equal(t, "2h 28m", detail.FormattedRuntime())
}

func TestGetCreditsByMovieID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/42/credits", r.URL.Path)
		io.WriteString(w, `{"id":42,"cast":[{"id":1,"name":"Leonardo DiCaprio","character":"Cobb","profile_path":"/l.jpg"},{"id":2,"name":"Extra","character":"","profile_path":null}]}`)
	})

	cast, err := client.GetCreditsByMovieID(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, cast, 2)
	assert.Equal(t, "Cobb", cast[0].Character)
	assert.Equal(t, "", cast[1].Character)
	assert.Nil(t, cast[1].ProfilePath)
}

func TestCreateGuestSession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authentication/guest_session/new", r.URL.Path)
		io.WriteString(w, `{"success":true,"guest_session_id":"abc123","expires_at":"2026-10-19 10:00:00 UTC"}`)
	})

	id, err := client.CreateGuestSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestCreateGuestSessionRejectsUnsuccessful(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false}`)
	})

	_, err := client.CreateGuestSession(context.Background())
	require.Error(t, err)
}

func TestRateMovieSendsValueAndSession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/movie/42/rating", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("guest_session_id"))

		var body RatingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 7.5, body.Value)

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"success":true,"status_code":1,"status_message":"Success."}`)
	})

	require.NoError(t, client.RateMovie(context.Background(), 42, 7.5, "abc123"))
}

func TestErrorResponsesUseStatusMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`)
	})

	_, err := client.GetPopular(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API key: You must be granted a valid key.", err.Error())
	assert.True(t, errors.Is(err, domain.ErrAuthFailed))
}

func TestErrorResponsesWithoutBodyUseGenericMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetMovieByID(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Unexpected TMDb network error", err.Error())
}

func TestNoRetryOnServerError(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetUpcoming(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestUnreachableServerIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "k", "es-ES", 0, adapter.NullLogger())
	_, err := client.GetPopular(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrServerOffline))
}

func TestImageURL(t *testing.T) {
	p := "/poster.jpg"
	empty := ""
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", ImageURL("https://image.tmdb.org/t/p/w500/", &p))
	assert.Equal(t, "", ImageURL("https://image.tmdb.org/t/p/w500", nil))
	assert.Equal(t, "", ImageURL("https://image.tmdb.org/t/p/w500", &empty))
}
