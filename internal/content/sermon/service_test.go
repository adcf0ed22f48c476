// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/content/sermon"
	"github.com/taibuivan/masjid/internal/platform/apperr"
	"github.com/taibuivan/masjid/pkg/pagination"
)

type fakeRepository struct {
	sermons []sermon.Sermon
}

func (repository *fakeRepository) ListPublished(context.Context) ([]sermon.Sermon, error) {
	return repository.sermons, nil
}

func library() *fakeRepository {
	day := func(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }
	return &fakeRepository{sermons: []sermon.Sermon{
		{ID: "s1", Slug: "patience-in-hardship", Title: "Patience in Hardship", Speaker: "Imam Yusuf Khan", Series: "Friday Khutbah", DeliveredOn: day(16), DurationSec: 1680},
		{ID: "s2", Title: "Tafsir of Surah al-Kahf", Speaker: "Shaykh Ahmad", Series: "Tafsir", DeliveredOn: day(9), DurationSec: 3720},
		{ID: "s3", Slug: "neighbours-rights", Title: "The Rights of Neighbours", Speaker: "Imam Yusuf Khan", Series: "Friday Khutbah", DeliveredOn: day(2)},
	}}
}

func newService() *sermon.Service {
	return sermon.NewService(library(), nil, slog.Default())
}

/*
TestService_List_Search verifies query, speaker and series filtering.
*/
func TestService_List_Search(t *testing.T) {
	page := pagination.Params{Page: 1, Limit: 20}

	tests := []struct {
		name   string
		filter sermon.Filter
		want   []string
	}{
		{"all", sermon.Filter{}, []string{"s1", "s2", "s3"}},
		{"query_title", sermon.Filter{Query: "kahf"}, []string{"s2"}},
		{"query_speaker", sermon.Filter{Query: "YUSUF"}, []string{"s1", "s3"}},
		{"speaker_filter", sermon.Filter{Speakers: []string{"shaykh ahmad"}}, []string{"s2"}},
		{"series_and_query", sermon.Filter{Series: []string{"Friday Khutbah"}, Query: "neighbours"}, []string{"s3"}},
		{"no_match", sermon.Filter{Query: "zakat"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := newService().List(context.Background(), tt.filter, page)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), total)
		})
	}
}

/*
TestService_List_Pagination verifies the total covers all pages.
*/
func TestService_List_Pagination(t *testing.T) {
	got, total, err := newService().List(context.Background(), sermon.Filter{}, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, got, 1)
	assert.Equal(t, "s3", got[0].ID)
}

/*
TestService_DisplayFields verifies derived slug, date and duration.
*/
func TestService_DisplayFields(t *testing.T) {
	got, err := newService().GetBySlug(context.Background(), "tafsir-of-surah-al-kahf")
	require.NoError(t, err)

	assert.Equal(t, "s2", got.ID)
	assert.Equal(t, "9 Oct 2026", got.Date)
	assert.Equal(t, "1 h 2 min", got.Duration)

	latest, err := newService().Latest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "28 min", latest[0].Duration)
}

/*
TestService_GetBySlug_Errors verifies malformed and unknown slugs.
*/
func TestService_GetBySlug_Errors(t *testing.T) {
	_, err := newService().GetBySlug(context.Background(), "Bad Slug")
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = newService().GetBySlug(context.Background(), "unknown")
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

/*
TestHandler_ListSermons verifies the paginated envelope and query parsing.
*/
func TestHandler_ListSermons(t *testing.T) {
	router := chi.NewRouter()
	router.Mount("/sermons", sermon.NewHandler(newService()).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/sermons?speaker=Imam%20Yusuf%20Khan&limit=1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []sermon.Sermon `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.Equal(t, "s1", body.Data[0].ID)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/sermons/missing-one", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
