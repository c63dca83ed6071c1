package models

import "time"

// Contact channels a requester can choose from.
const (
	ContactPreferenceEmail = "email"
	ContactPreferencePhone = "phone"
)

// RequestTextMaxLength bounds the free-text body of a prayer request.
const RequestTextMaxLength = 600

func IsValidContactPreference(pref string) bool {
	return pref == ContactPreferenceEmail || pref == ContactPreferencePhone
}

// PrayerRequest is a visitor submission with no public visibility. It is
// never updated; admins can only read and delete it.
type PrayerRequest struct {
	Request_ID         int       `json:"requestId" db:"request_id" goqu:"skipinsert"`
	First_Name         string    `json:"firstName" db:"first_name"`
	Last_Name          string    `json:"lastName" db:"last_name"`
	Email              string    `json:"email" db:"email"`
	Phone              *string   `json:"phone" db:"phone"`
	Request_Text       string    `json:"requestText" db:"request_text"`
	Contact_Preference string    `json:"contactPreference" db:"contact_preference"`
	Datetime_Create    time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	First_Name         string  `json:"firstName"`
	Last_Name          string  `json:"lastName"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	Request_Text       string  `json:"requestText"`
	Contact_Preference string  `json:"contactPreference"`
}
