// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kiosk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/masjid/internal/content/settings"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/platform/respond"
	"github.com/taibuivan/masjid/internal/rotation"
)

// Content is everything the lobby display shows.
type Content struct {
	Site    settings.Site
	Slides  []rotation.Slide
	Notices []rotation.Notice
}

// Source loads display content.
type Source interface {
	Fetch(context context.Context) (Content, error)
}

// Client reads the public content API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:8080"). A nil httpClient uses a client bounded by
// [constants.KioskRequestTimeout].
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.KioskRequestTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Fetch loads settings, slides and notices concurrently.
func (client *Client) Fetch(context context.Context) (Content, error) {
	var content Content

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() error {
		return client.get(groupContext, "/api/v1/settings", &content.Site)
	})
	group.Go(func() error {
		return client.get(groupContext, "/api/v1/slides", &content.Slides)
	})
	group.Go(func() error {
		return client.get(groupContext, "/api/v1/notices", &content.Notices)
	})

	if err := group.Wait(); err != nil {
		return Content{}, err
	}
	return content, nil
}

// get decodes the data member of the success envelope into target.
func (client *Client) get(context context.Context, path string, target any) error {
	request, err := http.NewRequestWithContext(context, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("kiosk: build request %s: %w", path, err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("kiosk: get %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var failure respond.ErrorEnvelope
		if decodeErr := json.NewDecoder(response.Body).Decode(&failure); decodeErr != nil || failure.Code == "" {
			return fmt.Errorf("kiosk: get %s: status %d", path, response.StatusCode)
		}
		return fmt.Errorf("kiosk: get %s: %s: %s", path, failure.Code, failure.Error)
	}

	envelope := struct {
		Data any `json:"data"`
	}{Data: target}

	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("kiosk: decode %s: %w", path, err)
	}
	return nil
}
