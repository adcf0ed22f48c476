// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slide serves the hero banner records authored in the CMS.

Only published slides are returned, in their CMS sort order. The position of
a slide in the returned list is its slide index for the hero rotator.
*/
package slide

import "github.com/taibuivan/masjid/internal/rotation"

// Slide is a published hero banner.
type Slide = rotation.Slide
