package schema

// SiteSettingTable represents the 'site.setting' table
type SiteSettingTable struct {
	Table     string
	Key       string
	Value     string
	UpdatedAt string
}

var SiteSetting = SiteSettingTable{
	Table:     "site.setting",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updatedat",
}
