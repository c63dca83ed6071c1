package models

import (
	"encoding/json"
	"time"
)

// Fixed page documents. Site content rows are keyed by these ids instead of
// generated identifiers; they are seeded once and only ever updated.
const (
	PageHome     = "homePage"
	PageAbout    = "aboutPage"
	PageServices = "servicesPage"
)

var SiteContentPages = []string{PageHome, PageAbout, PageServices}

func IsValidPage(pageID string) bool {
	for _, p := range SiteContentPages {
		if p == pageID {
			return true
		}
	}
	return false
}

// SiteContent holds the structured text and image fields for one public
// page (hero text, pillar descriptions, service cards and so on). The
// field set differs per page, so fields are stored as a single JSON
// document and replaced wholesale on every admin save.
type SiteContent struct {
	Page_ID         string          `json:"pageId" db:"page_id" goqu:"skipinsert"`
	Fields          json.RawMessage `json:"fields" db:"fields"`
	Datetime_Update time.Time       `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type SiteContentUpdate struct {
	Fields map[string]string `json:"fields"`
}
