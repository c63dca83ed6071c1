package models

import "time"

// AdminUser is the only kind of authenticated principal. Visitors are
// anonymous; every mutation outside comment and request submission
// requires an admin session.
type AdminUser struct {
	Admin_User_ID   int       `json:"adminUserId" db:"admin_user_id" goqu:"skipinsert"`
	Email           string    `json:"email" db:"email"`
	Password        string    `json:"-" db:"password"`
	Display_Name    string    `json:"displayName" db:"display_name"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
