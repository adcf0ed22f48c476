// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/rotation"
)

/*
TestActionFor resolves CMS buttons into tagged actions.
*/
func TestActionFor(t *testing.T) {
	assert.Equal(t, rotation.ActionNavigateTo, rotation.ActionFor(rotation.Button{Text: "Visit", Href: "/visit"}).Kind())
	assert.Equal(t, rotation.ActionNone, rotation.ActionFor(rotation.Button{Text: "Visit"}).Kind())
	assert.Equal(t, rotation.ActionNone, rotation.ActionFor(rotation.Button{}).Kind())
	assert.Equal(t, rotation.ActionNone, rotation.ActionFromCallback(nil).Kind())
}

/*
TestDispatch verifies each variant performs its own behaviour.
*/
func TestDispatch(t *testing.T) {
	called := false
	assert.True(t, rotation.Dispatch(rotation.ActionFromCallback(func() { called = true }), nil))
	assert.True(t, called)

	visited := ""
	assert.True(t, rotation.Dispatch(rotation.NavigateTo{URL: "/events"}, func(url string) { visited = url }))
	assert.Equal(t, "/events", visited)

	assert.False(t, rotation.Dispatch(rotation.None{}, nil))
}

/*
TestHeroView_JSON verifies actions serialise as tagged objects.
*/
func TestHeroView_JSON(t *testing.T) {
	view := rotation.HeroView{
		ID:        "welcome",
		Primary:   rotation.NavigateTo{URL: "/about"},
		Secondary: rotation.None{},
	}

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]any{"kind": "navigate", "href": "/about"}, decoded["primary"])
	assert.Equal(t, map[string]any{"kind": "none"}, decoded["secondary"])
}

/*
TestParseViewport defaults unknown names to desktop.
*/
func TestParseViewport(t *testing.T) {
	assert.Equal(t, rotation.ViewportMobile, rotation.ParseViewport(" Mobile "))
	assert.Equal(t, rotation.ViewportDesktop, rotation.ParseViewport("tablet"))
	assert.Equal(t, rotation.ViewportMobile, rotation.ViewportForWidth(600, 768))
	assert.Equal(t, rotation.ViewportDesktop, rotation.ViewportForWidth(768, 768))
}
