// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kiosk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/kiosk"
	"github.com/taibuivan/masjid/internal/platform/apperr"
	"github.com/taibuivan/masjid/internal/platform/respond"
	"github.com/taibuivan/masjid/internal/rotation"
)

func contentAPI(noticesFail bool) *httptest.Server {
	router := chi.NewRouter()

	router.Get("/api/v1/settings", func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, settings.Site{Name: "Masjid Al-Noor"})
	})
	router.Get("/api/v1/slides", func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, []rotation.Slide{
			{ID: "s1", Title: "Ramadan Timetable", PrimaryButton: rotation.Button{Text: "View", Href: "/prayer-times"}},
			{ID: "s2", Title: "Friday Khutbah"},
		})
	})
	router.Get("/api/v1/notices", func(writer http.ResponseWriter, request *http.Request) {
		if noticesFail {
			respond.Error(writer, request, apperr.Internal(errors.New("database down")))
			return
		}
		respond.OK(writer, []rotation.Notice{{ID: "n1", Title: "Eid prayer at 8am", Tag: "prayer", TagColor: "#047857"}})
	})

	return httptest.NewServer(router)
}

/*
TestClient_Fetch verifies the client unwraps the data envelope of each collection.
*/
func TestClient_Fetch(t *testing.T) {
	server := contentAPI(false)
	defer server.Close()

	content, err := kiosk.NewClient(server.URL+"/", nil).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Masjid Al-Noor", content.Site.Name)
	require.Len(t, content.Slides, 2)
	assert.Equal(t, "/prayer-times", content.Slides[0].PrimaryButton.Href)
	require.Len(t, content.Notices, 1)
	assert.Equal(t, "#047857", content.Notices[0].TagColor)
}

/*
TestClient_FetchError verifies API errors surface with their code.
*/
func TestClient_FetchError(t *testing.T) {
	server := contentAPI(true)
	defer server.Close()

	_, err := kiosk.NewClient(server.URL, server.Client()).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/api/v1/notices")
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}

/*
TestClient_Unreachable verifies transport failures are returned.
*/
func TestClient_Unreachable(t *testing.T) {
	server := contentAPI(false)
	server.Close()

	_, err := kiosk.NewClient(server.URL, nil).Fetch(context.Background())
	assert.Error(t, err)
}
