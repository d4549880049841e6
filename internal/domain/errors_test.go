package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAppError(t *testing.T) {
	assert.NoError(t, WrapAppError(nil, "fallback"))

	wrapped := WrapAppError(ErrNotFound, "No encontrada.")
	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "No encontrada.", appErr.Message)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	// An AppError keeps its own message, even when wrapped by fmt
	original := NewAppError("Mensaje original.", ErrAuthFailed)
	again := WrapAppError(fmt.Errorf("context: %w", original), "otro")
	assert.Same(t, original, again)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Sesion expirada.", Message(NewAppError("Sesion expirada.", nil), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", Message(NewAppError("", nil), "fallback"))
	assert.Equal(t, "fallback", Message(nil, "fallback"))
}

func TestMovieFormatting(t *testing.T) {
	m := Movie{ReleaseDate: "1972-03-14", VoteAverage: 8.71}
	assert.Equal(t, "1972", m.ReleaseYear())
	assert.Equal(t, "8.7", m.FormattedVote())
	assert.Equal(t, "", Movie{}.ReleaseYear())

	runtime := 45
	d := MovieDetail{Runtime: &runtime, Genres: []Genre{{ID: 18, Name: "Drama"}, {ID: 80, Name: "Crimen"}}}
	assert.Equal(t, "45m", d.FormattedRuntime())
	assert.Equal(t, []string{"Drama", "Crimen"}, d.GenreNames())
	assert.Equal(t, "", MovieDetail{}.FormattedRuntime())
}
