package models

import "time"

// AdminPushToken is a registered device token for dashboard notifications.
type AdminPushToken struct {
	Push_Token_ID   int       `json:"pushTokenId" db:"push_token_id"`
	Admin_User_ID   int       `json:"adminUserId" db:"admin_user_id"`
	Push_Token      string    `json:"pushToken" db:"push_token"`
	Platform        string    `json:"platform" db:"platform"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type PushTokenRequest struct {
	PushToken string `json:"pushToken" binding:"required"`
	Platform  string `json:"platform" binding:"required,oneof=ios android"`
}
