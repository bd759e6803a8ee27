// Package models defines the records persisted by the account and task managers.
// JSON field names match the documents written by earlier versions of the app,
// so existing data loads unchanged.
package models

import "time"

// User is a registered account. Email is stored lowercased and is unique.
// Password holds whatever the configured credential verifier sealed.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session identifies the currently logged-in user. At most one exists.
type Session struct {
	ID      int64     `json:"id"`
	Email   string    `json:"email"`
	LoginAt time.Time `json:"loginAt"`
}
