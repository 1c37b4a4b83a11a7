package domain

import "time"

type User struct {
	ID             uint64
	Email          string
	Username       string
	FirstName      string
	LastName       string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateUserInput struct {
	Email          string
	Username       string
	FirstName      string
	LastName       string
	HashedPassword string
}

// Identity is the resolved subject of a session token. A nil *Identity
// means the request is anonymous.
type Identity struct {
	Username string
	UserID   uint64
}
