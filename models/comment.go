package models

import "time"

// Comment moderation states. A comment is created pending and becomes
// publicly visible only after an admin approves it.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
)

// Comment represents a visitor reply attached to one post.
type Comment struct {
	Comment_ID      int       `json:"commentId" db:"comment_id" goqu:"skipinsert"`
	Post_ID         int       `json:"postId" db:"post_id"`
	Name            string    `json:"name" db:"name"`
	Comment_Text    string    `json:"commentText" db:"comment_text"`
	Approved        bool      `json:"approved" db:"approved"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

// Status reports the moderation state derived from the approved flag.
func (c Comment) Status() string {
	if c.Approved {
		return CommentStatusApproved
	}
	return CommentStatusPending
}

// CommentCreate is the public submission payload. Any approved value a
// visitor sends is discarded; submissions always start pending.
type CommentCreate struct {
	Name         string `json:"name"`
	Comment_Text string `json:"commentText"`
	Approved     bool   `json:"approved"`
}
