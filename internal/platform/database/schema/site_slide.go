package schema

// SiteSlideTable represents the 'site.slide' table
type SiteSlideTable struct {
	Table         string
	ID            string
	Title         string
	Description   string
	Image         string
	MobileImage   string
	PrimaryText   string
	PrimaryHref   string
	SecondaryText string
	SecondaryHref string
	SortOrder     string
	IsPublished   string
	CreatedAt     string
	UpdatedAt     string
}

// SiteSlide is the schema definition for site.slide
var SiteSlide = SiteSlideTable{
	Table:         "site.slide",
	ID:            "id",
	Title:         "title",
	Description:   "description",
	Image:         "image",
	MobileImage:   "mobileimage",
	PrimaryText:   "primarytext",
	PrimaryHref:   "primaryhref",
	SecondaryText: "secondarytext",
	SecondaryHref: "secondaryhref",
	SortOrder:     "sortorder",
	IsPublished:   "ispublished",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}
