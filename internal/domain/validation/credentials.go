// Package validation holds the credential rules applied at registration
// and password reset.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MinPasswordLength = 5
	MaxPasswordLength = 10
	// SpecialCharacters is the set a password must draw at least one symbol from
	SpecialCharacters = "@$!%*?&"
)

// AllowedEmailDomains is the registration whitelist, "@" included
var AllowedEmailDomains = []string{
	"@gmail.com",
	"@yahoo.com",
	"@outlook.com",
	"@yandex.ru",
	"@mail.ru",
	"@bk.ru",
}

// Password rule messages, in check order
const (
	MsgPasswordLength    = "Password must contain from 5 to 10 symbols"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordDigit     = "Password must contain at least one digit"
	MsgPasswordSpecial   = "Password must contain at least one special character"
)

// RuleError names the first credential rule a value violates
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// ValidateEmail reports whether the part of email from the first "@" on is whitelisted.
func ValidateEmail(email string) bool {
	return CheckEmail(email) == nil
}

// CheckEmail is ValidateEmail returning the violation message
func CheckEmail(email string) error {
	at := strings.Index(email, "@")
	if at >= 0 {
		domain := email[at:]
		for _, allowed := range AllowedEmailDomains {
			if domain == allowed {
				return nil
			}
		}
	}
	return &RuleError{Message: fmt.Sprintf("Email domain in %s is not validate", email)}
}

// ValidatePassword reports whether password satisfies every complexity rule
func ValidatePassword(password string) bool {
	return CheckPassword(password) == nil
}

// CheckPassword returns the first violated rule in the order
// length, uppercase, lowercase, digit, special character.
func CheckPassword(password string) error {
	length := len([]rune(password))
	if length < MinPasswordLength || length > MaxPasswordLength {
		return &RuleError{Message: MsgPasswordLength}
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			special = true
		}
	}

	switch {
	case !upper:
		return &RuleError{Message: MsgPasswordUppercase}
	case !lower:
		return &RuleError{Message: MsgPasswordLowercase}
	case !digit:
		return &RuleError{Message: MsgPasswordDigit}
	case !special:
		return &RuleError{Message: MsgPasswordSpecial}
	}
	return nil
}
