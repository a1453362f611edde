package validation

import (
	"movieclub_api/model"

	"github.com/badoux/checkmail"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Rule struct {
	Field   string
	Check   func() bool
	Message string
}

// Run evaluates every rule and returns all violations, not just the first.
func Run(rules []Rule) []FieldError {
	errs := make([]FieldError, 0)
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}

//---------------------------------------
//---------------------------------------

func userRules(username string, password string, email string) []Rule {
	return []Rule{
		{
			Field:   "username",
			Check:   func() bool { return username != "" },
			Message: "Username is required",
		},
		{
			Field:   "username",
			Check:   func() bool { return len(username) >= 3 },
			Message: "Username is too short (min. 3 characters long)",
		},
		{
			Field:   "username",
			Check:   func() bool { return isAlphanumeric(username) },
			Message: "Username contains non alphanumeric characters - not allowed.",
		},
		{
			Field:   "password",
			Check:   func() bool { return password != "" },
			Message: "Password is required",
		},
		{
			Field:   "email",
			Check:   func() bool { return checkmail.ValidateFormat(email) == nil },
			Message: "Email does not appear to be valid",
		},
	}
}

func ValidateCreateUser(req *model.CreateUserReq) []FieldError {
	return Run(userRules(req.Username, req.Password, req.Email))
}

func ValidateUpdateUser(req *model.UpdateUserReq) []FieldError {
	return Run(userRules(req.Username, req.Password, req.Email))
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
