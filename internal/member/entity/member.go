package entity

import "time"

// Member is a registered member. ID is zero until the storage layer
// assigns one on insert.
type Member struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// NewMember is the candidate record handed to the storage layer for insertion.
type NewMember struct {
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
