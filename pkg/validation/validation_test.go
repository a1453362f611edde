package validation

import (
	"movieclub_api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateCreateUserOK(t *testing.T) {
	errs := ValidateCreateUser(&model.CreateUserReq{
		Username: "bobross42",
		Password: "happy-little-trees",
		Email:    "bob@example.com",
	})
	assert.Empty(t, errs)
}

func TestValidateCreateUserShortUsername(t *testing.T) {
	errs := ValidateCreateUser(&model.CreateUserReq{
		Username: "ab",
		Password: "secret",
		Email:    "ab@example.com",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "Username is too short (min. 3 characters long)", errs[0].Message)
}

func TestValidateCreateUserNonAlphanumericUsername(t *testing.T) {
	errs := ValidateCreateUser(&model.CreateUserReq{
		Username: "bob ross!",
		Password: "secret",
		Email:    "bob@example.com",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
	assert.Contains(t, errs[0].Message, "non alphanumeric")
}

func TestValidateCreateUserBadEmail(t *testing.T) {
	errs := ValidateCreateUser(&model.CreateUserReq{
		Username: "bobross",
		Password: "secret",
		Email:    "not-an-email",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateCreateUserCollectsAllErrors(t *testing.T) {
	// every failing rule is reported, not just the first
	errs := ValidateCreateUser(&model.CreateUserReq{
		Username: "",
		Password: "",
		Email:    "nope",
	})
	fields := fieldsOf(errs)
	assert.GreaterOrEqual(t, len(errs), 3)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "email")
}

func TestValidateUpdateUserSameRules(t *testing.T) {
	errs := ValidateUpdateUser(&model.UpdateUserReq{
		Username: "ab",
		Password: "",
		Email:    "bad",
	})
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "email")
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, isAlphanumeric("Bob42"))
	assert.False(t, isAlphanumeric("bob-ross"))
	assert.False(t, isAlphanumeric("bob ross"))
	assert.False(t, isAlphanumeric("böb"))
}
