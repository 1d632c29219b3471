// AngelaMos | 2026
// validate_test.go

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/auth-api/internal/core"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@x.com",
		Birthdate:   "1990-12-10",
		PhoneNumber: "+15551234567",
		Password:    "Str0ngPassword",
	}
}

func messagesByField(details []core.FieldError) map[string]string {
	out := make(map[string]string, len(details))
	for _, d := range details {
		out[d.Field] = d.Message
	}
	return out
}

func TestValidateRegisterRequestValid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(validRegisterRequest()))
}

func TestValidateAggregatesAllFailingFields(t *testing.T) {
	v := NewValidator()

	err := v.Struct(RegisterRequest{
		FirstName:   "A",
		LastName:    "",
		Email:       "not-an-email",
		Birthdate:   "12/10/1990",
		PhoneNumber: "abc",
		Password:    "short1",
	})
	require.Error(t, err)

	byField := messagesByField(FieldErrors(err))

	// every failing field appears, not just the first
	assert.Equal(t, "First name must be at least 2 characters", byField["firstName"])
	assert.Equal(t, "Last name is required", byField["lastName"])
	assert.Equal(t, "Invalid email address", byField["email"])
	assert.Equal(t, "Invalid date format", byField["birthdate"])
	assert.Equal(t, "Invalid phone number format", byField["phoneNumber"])
	assert.Equal(t, "Password must be at least 8 characters", byField["password"])
}

func TestValidatePasswordComplexity(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		message  string
	}{
		{"missing", "", "Password is required"},
		{"too short", "Ab1", "Password must be at least 8 characters"},
		{"no uppercase", "alllower1", "Password must contain at least one uppercase letter"},
		{"no lowercase", "ALLUPPER1", "Password must contain at least one lowercase letter"},
		{"no digit", "NoDigitsHere", "Password must contain at least one number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			req.Password = tt.password

			err := v.Struct(req)
			require.Error(t, err)

			byField := messagesByField(FieldErrors(err))
			assert.Equal(t, tt.message, byField["password"])
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	v := NewValidator()

	valid := []string{
		"+15551234567",
		"(555) 123-4567",
		"555.123.4567",
		"+44 20 79460958",
	}
	for _, phone := range valid {
		req := validRegisterRequest()
		req.PhoneNumber = phone
		assert.NoError(t, v.Struct(req), "phone %q should be valid", phone)
	}

	invalid := []string{"abc", "555-CALL-NOW", "++1555"}
	for _, phone := range invalid {
		req := validRegisterRequest()
		req.PhoneNumber = phone
		assert.Error(t, v.Struct(req), "phone %q should be rejected", phone)
	}
}

func TestValidateBirthdateFormats(t *testing.T) {
	v := NewValidator()

	req := validRegisterRequest()
	req.Birthdate = "1990-12-10T00:00:00Z"
	assert.NoError(t, v.Struct(req), "RFC3339 timestamps are accepted")

	req.Birthdate = "10-12-1990"
	assert.Error(t, v.Struct(req))
}

func TestParseBirthdate(t *testing.T) {
	parsed, err := ParseBirthdate("1990-12-10")
	require.NoError(t, err)
	assert.Equal(t, 1990, parsed.Year())
	assert.Equal(t, 10, parsed.Day())

	parsed, err = ParseBirthdate("1990-12-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 1990, parsed.Year())

	_, err = ParseBirthdate("not a date")
	assert.Error(t, err)
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(LoginRequest{
		Email:    "ada@x.com",
		Password: "anything",
	}))

	err := v.Struct(LoginRequest{Email: "nope", Password: ""})
	require.Error(t, err)

	byField := messagesByField(FieldErrors(err))
	assert.Equal(t, "Invalid email address", byField["email"])
	assert.Equal(t, "Password is required", byField["password"])
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	details := FieldErrors(assert.AnError)

	require.Len(t, details, 1)
	assert.Equal(t, "general", details[0].Field)
}
