package entity

import "time"

// Contact belongs to exactly one user; Username never changes after creation.
type Contact struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
