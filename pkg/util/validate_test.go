package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9999999999", true},
		{"0123456789", true},
		{"999999999", false},   // 9 digits
		{"99999999990", false}, // 11 digits
		{"99999 9999", false},
		{"+919999999999", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@test.com"))
	assert.True(t, IsValidEmail("seller.name@shop.co.in"))
	assert.False(t, IsValidEmail("a@test"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPinCode(t *testing.T) {
	assert.True(t, IsValidPinCode("560001"))
	assert.False(t, IsValidPinCode("5600"))
	assert.False(t, IsValidPinCode("56000a"))
}

func TestIsValidIFSC(t *testing.T) {
	assert.True(t, IsValidIFSC("HDFC0001234"))
	assert.True(t, IsValidIFSC("hdfc0001234")) // normalized to upper case
	assert.False(t, IsValidIFSC("HDFC1001234"))
	assert.False(t, IsValidIFSC("HD0001234"))
}

func TestIsValidPAN(t *testing.T) {
	assert.True(t, IsValidPAN("ABCDE1234F"))
	assert.False(t, IsValidPAN("AB1234567F"))
	assert.False(t, IsValidPAN("ABCDE1234"))
}

func TestFieldErrors(t *testing.T) {
	fields := FieldErrors{}
	assert.True(t, fields.OK())

	fields.Require("name", "")
	fields.Require("email", "a@test.com")
	fields.Match("phone", "12345", IsValidPhone, "must be a 10-digit number")
	fields.Match("pinCode", "", IsValidPinCode, "must be a 6-digit pin code") // empty values skip Match

	assert.False(t, fields.OK())
	assert.Len(t, fields, 2)
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a 10-digit number", fields["phone"])
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "pinCode")
}
