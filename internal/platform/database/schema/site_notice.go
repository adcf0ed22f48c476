package schema

// SiteNoticeTable represents the 'site.notice' table
type SiteNoticeTable struct {
	Table       string
	ID          string
	Title       string
	PublishedOn string
	Tag         string
	IsCancelled string
	IsPublished string
	CreatedAt   string
}

// SiteNotice is the schema definition for site.notice
var SiteNotice = SiteNoticeTable{
	Table:       "site.notice",
	ID:          "id",
	Title:       "title",
	PublishedOn: "publishedon",
	Tag:         "tag",
	IsCancelled: "iscancelled",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
}
