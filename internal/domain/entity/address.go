package entity

import "time"

// Address always references an existing contact.
type Address struct {
	ID         int64
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
	ContactID  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
