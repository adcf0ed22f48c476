package schema

// SiteContactMessageTable represents the 'site.contactmessage' table
type SiteContactMessageTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	CreatedAt string
}

// SiteContactMessage is the schema definition for site.contactmessage
var SiteContactMessage = SiteContactMessageTable{
	Table:     "site.contactmessage",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Subject:   "subject",
	Message:   "message",
	IPAddress: "ipaddress",
	CreatedAt: "createdat",
}
