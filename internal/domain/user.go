package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Username  Username  `json:"username"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type Credentials struct {
	Username Username
	Password Password
}
