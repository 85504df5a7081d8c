package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValid(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all rules", "Abcdefg1!", true},
		{"minimum length", "Abcdef1!", true},
		{"maximum length", "Abcdefghijklmn1!", true},
		{"no uppercase", "abcdefg1!", false},
		{"no special character", "Abcdefg1", false},
		{"too short", "Ab1!", false},
		{"too long", "Abcdefghijklmno1!", false},
		{"empty", "", false},
		{"uppercase and special only at bounds", "AAAAAAA!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordValid(tt.password))
		})
	}
}

type signupShape struct {
	Name     string `validate:"required,min=20,max=60"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,userpassword"`
}

func validShape() signupShape {
	return signupShape{
		Name:     "Jonathan Albert Winchester",
		Email:    "jonathan@example.com",
		Password: "Sup3rSecret!",
	}
}

func TestValidateStruct_NameBounds(t *testing.T) {
	s := validShape()
	assert.Nil(t, ValidateStruct(s))

	s.Name = "Bob"
	errs := ValidateStruct(s)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs["Name"], "Minimum length is 20")

	s.Name = strings.Repeat("a", 20)
	assert.Nil(t, ValidateStruct(s))

	s.Name = strings.Repeat("a", 60)
	assert.Nil(t, ValidateStruct(s))

	s.Name = strings.Repeat("a", 61)
	errs = ValidateStruct(s)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs["Name"], "Maximum length is 60")
}

func TestValidateStruct_PasswordRule(t *testing.T) {
	s := validShape()
	s.Password = "weakpass"

	errs := ValidateStruct(s)
	assert.Contains(t, errs, "Password")
	assert.Contains(t, errs["Password"], "8-16 characters")
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", msg)

	assert.Empty(t, FormatValidationErrors(nil))
}
