package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash; Token is the opaque session credential
// and is empty while the user is logged out.
type User struct {
	Username  string
	Name      string
	Password  string
	Token     string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
