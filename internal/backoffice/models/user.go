// Package models defines the persisted record types of the back-office.
// The JSON shapes are the durable storage contract; field names must not
// change without a data migration.
package models

import "encoding/json"

// User is an account in the directory. Email is the case-insensitive unique
// key. Password holds the encoded credential digest, never clear text.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Active   bool   `json:"active"`
	Phone    string `json:"phone,omitempty"`
}

// UnmarshalJSON defaults Active to true when the key is absent. Records
// written before the flag existed carry no "active" key and must stay
// loginable.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := alias{Active: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*u = User(aux)
	return nil
}
