package domain

// OrganizationRecord is one directory entry. Name is required; every other
// field is optional and empty when absent.
type OrganizationRecord struct {
	Name     string       `json:"name" yaml:"name" toml:"name"`
	Website  string       `json:"website,omitempty" yaml:"website,omitempty" toml:"website,omitempty"`
	Phone    string       `json:"phone,omitempty" yaml:"phone,omitempty" toml:"phone,omitempty"`
	Hours    string       `json:"hours,omitempty" yaml:"hours,omitempty" toml:"hours,omitempty"` // only meaningful with Phone
	HelpPage string       `json:"helpPage,omitempty" yaml:"helpPage,omitempty" toml:"helpPage,omitempty"`
	Social   *SocialLinks `json:"social,omitempty" yaml:"social,omitempty" toml:"social,omitempty"`
}

// SocialLinks holds the optional social profile URLs of a record
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty" toml:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty" yaml:"facebook,omitempty" toml:"facebook,omitempty"`
}

// Twitter returns the record's twitter URL, or "" when there is none
func (r OrganizationRecord) Twitter() string {
	if r.Social == nil {
		return ""
	}
	return r.Social.Twitter
}

// Facebook returns the record's facebook URL, or "" when there is none
func (r OrganizationRecord) Facebook() string {
	if r.Social == nil {
		return ""
	}
	return r.Social.Facebook
}

// LinkField names a linkable field of a record
type LinkField string

const (
	LinkWebsite  LinkField = "website"
	LinkPhone    LinkField = "phone"
	LinkHelpPage LinkField = "help page"
	LinkTwitter  LinkField = "twitter"
	LinkFacebook LinkField = "facebook"
)

// Link returns the target for a link field. Phone numbers become tel: URIs.
func (r OrganizationRecord) Link(field LinkField) string {
	switch field {
	case LinkWebsite:
		return r.Website
	case LinkPhone:
		if r.Phone == "" {
			return ""
		}
		return "tel:" + r.Phone
	case LinkHelpPage:
		return r.HelpPage
	case LinkTwitter:
		return r.Twitter()
	case LinkFacebook:
		return r.Facebook()
	default:
		return ""
	}
}
