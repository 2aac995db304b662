package contact

import "errors"

// ContactRequest represents a contact form submission as sent by the site.
// Fields are validated after trimming, so no binding tags are used here.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SuccessMessage is returned once the admin notification is accepted.
const SuccessMessage = "Email sent! Check your inbox for confirmation."

// ErrNullBody is returned by ParseBody for a JSON null document.
var ErrNullBody = errors.New("request body is null")

// RawContactRequest holds the form fields of a decoded body before their types
// are checked. A field is nil when it is absent or null.
type RawContactRequest struct {
	Name    any
	Email   any
	Message any
}

// ParseBody extracts the form fields from a body decoded into an interface
// value. Arrays and scalars carry no fields and yield an empty request.
func ParseBody(body any) (*RawContactRequest, error) {
	switch v := body.(type) {
	case nil:
		return nil, ErrNullBody
	case map[string]any:
		return &RawContactRequest{
			Name:    v["name"],
			Email:   v["email"],
			Message: v["message"],
		}, nil
	default:
		return &RawContactRequest{}, nil
	}
}
