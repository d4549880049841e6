package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/cartelera/internal/adapter"
	"github.com/mmcdole/cartelera/internal/adapter/source/tmdb"
	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// fakeTMDb serves just enough of the TMDb API for the home and detail screens
type fakeTMDb struct {
	sessions int32
	rated    []float64
	failRate bool
}

func (f *fakeTMDb) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/popular":
			io.WriteString(w, `{"results":[{"id":10,"title":"M10"}]}`)
		case "/movie/top_rated":
			io.WriteString(w, `{"results":[{"id":20,"title":"M20"}]}`)
		case "/movie/upcoming":
			io.WriteString(w, `{"results":[{"id":30,"title":"M30"}]}`)
		case "/movie/now_playing":
			io.WriteString(w, `{"results":[{"id":1,"title":"Zulu"},{"id":2,"title":"Alpha"},{"id":3,"title":"Bravo"}]}`)
		case "/movie/7":
			io.WriteString(w, `{"id":7,"title":"Siete","runtime":148,"genres":[{"id":18,"name":"Drama"}]}`)
		case "/movie/7/credits":
			io.WriteString(w, `{"id":7,"cast":[{"id":5,"name":"Actor","character":"Hero"}]}`)
		case "/movie/7/recommendations":
			io.WriteString(w, `{"results":[{"id":8,"title":"Ocho"}]}`)
		case "/authentication/guest_session/new":
			atomic.AddInt32(&f.sessions, 1)
			io.WriteString(w, `{"success":true,"guest_session_id":"guest-1"}`)
		case "/movie/7/rating":
			if f.failRate {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, `{"status_code":11,"status_message":"Internal error."}`)
				return
			}
			assert.Equal(t, "guest-1", r.URL.Query().Get("guest_session_id"))
			var body struct {
				Value float64 `json:"value"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			f.rated = append(f.rated, body.Value)
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"success":true,"status_code":1,"status_message":"Success."}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"status_code":34,"status_message":"The resource you requested could not be found."}`)
		}
	}
}

func newTestContainer(t *testing.T, api *fakeTMDb) *Container {
	t.Helper()
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)

	cfg := adapter.DefaultConfig()
	cfg.TMDB.BaseURL = srv.URL
	cfg.TMDB.APIKey = "test-key"

	client := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.TMDB.Language, cfg.TMDB.Timeout, adapter.NullLogger())
	return NewWithSource(cfg, client, adapter.NullLogger())
}

func movieTitles(s viewmodel.HomeState) (popular, nowPlaying []string) {
	for _, m := range s.Popular {
		popular = append(popular, m.Title)
	}
	for _, m := range s.NowPlaying {
		nowPlaying = append(nowPlaying, m.Title)
	}
	return popular, nowPlaying
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(adapter.DefaultConfig(), adapter.NullLogger())
	assert.Error(t, err)
}

func TestHomeEndToEnd(t *testing.T) {
	c := newTestContainer(t, &fakeTMDb{})
	home := c.NewHome()
	defer home.Close()

	home.Activate(context.Background())
	s := home.State()

	require.Nil(t, s.Error)
	assert.False(t, s.Loading)
	popular, nowPlaying := movieTitles(s)
	assert.Equal(t, []string{"M10"}, popular)
	assert.Equal(t, "M20", s.TopRated[0].Title)
	assert.Equal(t, "M30", s.Upcoming[0].Title)
	assert.Equal(t, []string{"Alpha", "Bravo", "Zulu"}, nowPlaying)
}

func TestDetailAndRatingEndToEnd(t *testing.T) {
	api := &fakeTMDb{}
	c := newTestContainer(t, api)
	detail := c.NewDetail()
	defer detail.Close()

	detail.Activate(context.Background(), 7)
	s := detail.State()
	require.Nil(t, s.Error)
	require.NotNil(t, s.Movie)
	assert.Equal(t, "Siete", s.Movie.Title)
	assert.Equal(t, "2h 28m", s.Movie.FormattedRuntime())
	assert.Len(t, s.Cast, 1)
	assert.Len(t, s.Recommendations, 1)

	detail.RateMovie(context.Background(), 7.3)
	detail.RateMovie(context.Background(), 11)
	s = detail.State()

	require.NotNil(t, s.RatingSuccess)
	assert.Equal(t, viewmodel.MsgRatingSuccess, *s.RatingSuccess)
	assert.Equal(t, []float64{7.5, 10}, api.rated)
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.sessions))
}

func TestRatingFailureEndToEnd(t *testing.T) {
	c := newTestContainer(t, &fakeTMDb{failRate: true})
	detail := c.NewDetail()
	defer detail.Close()

	detail.Activate(context.Background(), 7)
	detail.RateMovie(context.Background(), 8)
	s := detail.State()

	assert.Nil(t, s.RatingSuccess)
	require.NotNil(t, s.RatingError)
	assert.Equal(t, "No pudimos registrar tu calificacion.", *s.RatingError)
}

func TestDetailNotFoundEndToEnd(t *testing.T) {
	c := newTestContainer(t, &fakeTMDb{})
	detail := c.NewDetail()
	defer detail.Close()

	detail.Activate(context.Background(), 404)
	s := detail.State()

	require.NotNil(t, s.Error)
	assert.NotEmpty(t, *s.Error)
	assert.Nil(t, s.Movie)
}

func TestImageURL(t *testing.T) {
	c := newTestContainer(t, &fakeTMDb{})
	path := "/poster.jpg"

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", c.ImageURL(&path))
	assert.Empty(t, c.ImageURL(nil))
}
