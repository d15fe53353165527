package http

import (
	"regexp"
	"strings"
)

// emailPattern mirrors the signup form's basic shape check; real
// deliverability is not this layer's problem.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const minPasswordLength = 8

// FieldError names a single invalid input field. Validation always reports
// every violation, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validateSignup(req signupRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "first name is required"})
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "last name is required"})
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	return errs
}

func validateSignin(req signinRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

func validateBlogBody(req blogRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}
	return errs
}
