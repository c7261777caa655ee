package customer

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired  = errors.New("customer name and surname are required")
	ErrInvalidEmail  = errors.New("invalid customer email")
	ErrEmailRequired = errors.New("customer email is required")
)

// Customer carries the contact data needed to resolve or create a guest
// record. Resolution happens by email, which is unique in storage.
type Customer struct {
	Name     string
	Surname  string
	Email    string
	Phone    string
	Document string
}

func NewCustomer(name, surname, email, phone, document string) (Customer, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" || surname == "" {
		return Customer{}, ErrNameRequired
	}
	if email == "" {
		return Customer{}, ErrEmailRequired
	}
	if !strings.Contains(email[1:], "@") || strings.HasSuffix(email, "@") {
		return Customer{}, ErrInvalidEmail
	}

	return Customer{
		Name:     name,
		Surname:  surname,
		Email:    email,
		Phone:    strings.TrimSpace(phone),
		Document: strings.TrimSpace(document),
	}, nil
}
