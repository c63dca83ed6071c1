package models

import "time"

// Post categories map one-to-one to the public site's content pages.
const (
	CategoryQuickWord        = "a-quick-word"
	CategoryPrayAlongWithMe  = "pray-along-with-me"
	CategoryMinistersDesk    = "ministers-desk"
	CategoryMonthlyBroadcast = "monthly-broadcast"
	CategoryPrayingPsalms    = "praying-psalms"
	CategoryMySecretPlace    = "my-secret-place"
	CategoryMySpace          = "my-space"
)

var PostCategories = []string{
	CategoryQuickWord,
	CategoryPrayAlongWithMe,
	CategoryMinistersDesk,
	CategoryMonthlyBroadcast,
	CategoryPrayingPsalms,
	CategoryMySecretPlace,
	CategoryMySpace,
}

func IsValidCategory(category string) bool {
	for _, c := range PostCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Post struct {
	Post_ID         int       `json:"postId" db:"post_id" goqu:"skipinsert"`
	Title           string    `json:"title" db:"title"`
	Category        string    `json:"category" db:"category"`
	Scripture       *string   `json:"scripture" db:"scripture"`
	Image           string    `json:"image" db:"image"`
	Content         string    `json:"content" db:"content"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

// PostCreate is the admin editor payload. The id and timestamps are
// server-assigned and never accepted from the client.
type PostCreate struct {
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Scripture *string `json:"scripture"`
	Image     string  `json:"image"`
	Content   string  `json:"content"`
}

type PostUpdate struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	Scripture *string `json:"scripture"`
	Image     *string `json:"image"`
	Content   *string `json:"content"`
}
