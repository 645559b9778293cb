// Package dto turns raw form submissions into typed values. Absent or
// malformed fields become ValidationError values carrying the exact message
// the error view shows; nothing downstream re-validates.
package dto

import (
	"net/http"
	"strconv"
	"strings"
)

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

func fail(message string) *ValidationError { return &ValidationError{Message: message} }

type RegisterForm struct {
	Username     string
	Password     string
	Confirmation string
}

// ParseRegisterForm validates in order: username present, username length,
// password present, password length, confirmation match. The username is
// trimmed and lower-cased before any check.
func ParseRegisterForm(r *http.Request) (*RegisterForm, error) {
	username := strings.ToLower(strings.TrimSpace(r.PostFormValue("username")))
	password := r.PostFormValue("password")
	confirmation := r.PostFormValue("confirmation")

	if username == "" {
		return nil, fail("Please type in a username")
	}
	if len(username) < 3 {
		return nil, fail("Username must be at least 3 characters long")
	}
	if password == "" {
		return nil, fail("Please type in a password")
	}
	if len(password) < 6 {
		return nil, fail("Password must be at least 6 characters long")
	}
	if password != confirmation {
		return nil, fail("Password confirmation does not match")
	}
	return &RegisterForm{Username: username, Password: password, Confirmation: confirmation}, nil
}

type LoginForm struct {
	Username string
	Password string
}

func ParseLoginForm(r *http.Request) (*LoginForm, error) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" {
		return nil, fail("Must provide username")
	}
	if password == "" {
		return nil, fail("Must provide password")
	}
	return &LoginForm{Username: username, Password: password}, nil
}

type AddForm struct {
	Item     string
	Quantity int
	Sort     string
}

func ParseAddForm(r *http.Request) (*AddForm, error) {
	item := r.PostFormValue("item")
	if strings.TrimSpace(item) == "" {
		return nil, fail("Please provide an item name")
	}
	quantity, err := parseQuantity(r.PostFormValue("quantity"))
	if err != nil {
		return nil, err
	}
	return &AddForm{Item: item, Quantity: quantity, Sort: r.PostFormValue("sort")}, nil
}

type EditForm struct {
	ItemID   int
	Quantity int
	Sort     string
}

func ParseEditForm(r *http.Request) (*EditForm, error) {
	itemID, err := parseItemID(r, "Invalid item selected")
	if err != nil {
		return nil, err
	}
	quantity, err := parseQuantity(r.PostFormValue("new_quantity"))
	if err != nil {
		return nil, err
	}
	return &EditForm{ItemID: itemID, Quantity: quantity, Sort: r.PostFormValue("sort")}, nil
}

type RemoveForm struct {
	ItemID int
	Sort   string
}

func ParseRemoveForm(r *http.Request) (*RemoveForm, error) {
	itemID, err := parseItemID(r, "Select item to remove")
	if err != nil {
		return nil, err
	}
	return &RemoveForm{ItemID: itemID, Sort: r.PostFormValue("sort")}, nil
}

type ToggleForm struct {
	ItemID int
	Sort   string
}

func ParseToggleForm(r *http.Request) (*ToggleForm, error) {
	itemID, err := parseItemID(r, "Invalid item selected")
	if err != nil {
		return nil, err
	}
	return &ToggleForm{ItemID: itemID, Sort: r.PostFormValue("sort")}, nil
}

// parseQuantity accepts any integer >= 1.
func parseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || quantity < 1 {
		return 0, fail("Please provide a valid quantity")
	}
	return quantity, nil
}

// parseItemID only requires an integer. A negative or unknown id matches
// zero rows later, which is deliberately not an error.
func parseItemID(r *http.Request, message string) (int, error) {
	itemID, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("item_id")))
	if err != nil {
		return 0, fail(message)
	}
	return itemID, nil
}
