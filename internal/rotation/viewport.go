// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rotation

import "strings"

// Viewport is the layout class chosen once per render pass by the caller.
type Viewport string

const (
	ViewportMobile  Viewport = "mobile"
	ViewportDesktop Viewport = "desktop"
)

// ParseViewport reads a viewport name. Anything unknown is desktop.
func ParseViewport(raw string) Viewport {
	if strings.EqualFold(strings.TrimSpace(raw), string(ViewportMobile)) {
		return ViewportMobile
	}
	return ViewportDesktop
}

// ViewportForWidth classifies a width against a breakpoint.
func ViewportForWidth(width, breakpoint int) Viewport {
	if width < breakpoint {
		return ViewportMobile
	}
	return ViewportDesktop
}

// IsMobile reports whether the viewport is the mobile class.
func (viewport Viewport) IsMobile() bool {
	return viewport == ViewportMobile
}
