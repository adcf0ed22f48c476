package schema

// SiteEventTable represents the 'site.event' table
type SiteEventTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Location    string
	ImageURL    string
	StartsAt    string
	EndsAt      string
	CreatedAt   string
}

// SiteEvent is the schema definition for site.event
var SiteEvent = SiteEventTable{
	Table:       "site.event",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Location:    "location",
	ImageURL:    "imageurl",
	StartsAt:    "startsat",
	EndsAt:      "endsat",
	CreatedAt:   "createdat",
}
