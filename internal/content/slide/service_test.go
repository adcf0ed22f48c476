// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/content/slide"
	"github.com/taibuivan/masjid/internal/platform/cache"
)

type fakeRepository struct {
	slides []slide.Slide
	err    error
	calls  int
}

func (repository *fakeRepository) ListPublished(context.Context) ([]slide.Slide, error) {
	repository.calls++
	return repository.slides, repository.err
}

/*
TestService_ListActive_Cached verifies the second read is served from Redis.
*/
func TestService_ListActive_Cached(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	repo := &fakeRepository{slides: []slide.Slide{{ID: "welcome", Title: "Welcome"}, {ID: "ramadan", Title: "Ramadan"}}}
	service := slide.NewService(repo, cache.New(client, time.Minute, slog.Default()), slog.Default())

	for range 2 {
		got, err := service.ListActive(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "ramadan", got[1].ID)
	}
	assert.Equal(t, 1, repo.calls)
}

/*
TestHandler_ListSlides verifies the JSON envelope and error mapping.
*/
func TestHandler_ListSlides(t *testing.T) {
	repo := &fakeRepository{slides: []slide.Slide{{ID: "welcome"}}}
	router := chi.NewRouter()
	router.Mount("/slides", slide.NewHandler(slide.NewService(repo, nil, slog.Default())).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/slides", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []slide.Slide `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "welcome", body.Data[0].ID)

	repo.err = errors.New("connection reset")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/slides", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
