package models

// RequestStatus is the moderation state of a seller-verification request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// SellerRequest is a pending claim by an applicant to be granted seller
// status, tracked independently of any User account. Password is set only
// by a credential reset; it does not migrate to the user directory when the
// request is approved.
type SellerRequest struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Status   RequestStatus `json:"status"`
	Password string        `json:"password,omitempty"`
	Phone    string        `json:"phone,omitempty"`
}
