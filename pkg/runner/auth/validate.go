package auth

import (
	"errors"
	"regexp"
	"strings"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateCredentials checks the sign-in form rules.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email is invalid")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

// ValidateRegistration checks the sign-up form rules.
func ValidateRegistration(first, last, email, password, confirm string) error {
	if strings.TrimSpace(first) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(last) == "" {
		return errors.New("last name is required")
	}
	if err := ValidateCredentials(email, password); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if confirm == "" {
		return errors.New("please confirm your password")
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	return nil
}
