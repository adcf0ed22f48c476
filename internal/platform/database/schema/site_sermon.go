package schema

// SiteSermonTable represents the 'site.sermon' table
type SiteSermonTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Speaker     string
	Series      string
	Description string
	Thumbnail   string
	MediaURL    string
	DeliveredOn string
	DurationSec string
	IsPublished string
	CreatedAt   string
}

// SiteSermon is the schema definition for site.sermon
var SiteSermon = SiteSermonTable{
	Table:       "site.sermon",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Speaker:     "speaker",
	Series:      "series",
	Description: "description",
	Thumbnail:   "thumbnail",
	MediaURL:    "mediaurl",
	DeliveredOn: "deliveredon",
	DurationSec: "durationsec",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
}
