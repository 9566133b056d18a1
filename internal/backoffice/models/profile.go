package models

// Profile is the admin's own contact card. Exactly one record exists,
// stored under its own key.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
