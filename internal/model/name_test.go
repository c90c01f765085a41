package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	valid := []string{
		"Checking:Main",
		"Everyday Expenses:Dining Out",
		"Savings",
	}
	for _, name := range valid {
		assert.True(t, ValidateAccountName(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"Dining  Out",      // double space
		"Dining (Out)",     // parentheses
		"Rent [monthly]",   // brackets
		"Fun#Money",        // hash
		"A;B",              // semicolon
		"50% Off",          // percent
		"Stars*",           // asterisk
		"Either|Or",        // pipe
	}
	for _, name := range invalid {
		assert.False(t, ValidateAccountName(name), "expected %q to be invalid", name)
	}
}

func TestNormalizeAccountName(t *testing.T) {
	cases := map[string]string{
		"Dining  Out":       "Dining Out",
		"Dining (Out)":      "Dining Out",
		"  Rent [monthly] ": "Rent monthly",
		"Fun#Money":         "FunMoney",
		"A ( ) B":           "A B",
		"Checking:Main":     "Checking:Main",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeAccountName(in))
	}
}

func TestNormalizeAccountNameIdempotent(t *testing.T) {
	names := []string{
		"Dining  Out",
		"A ( ) B",
		"  #weird  [name]  ",
		"already fine",
	}
	for _, name := range names {
		once := NormalizeAccountName(name)
		assert.Equal(t, once, NormalizeAccountName(once), "normalize not idempotent for %q", name)
		assert.True(t, ValidateAccountName(once), "normalized %q still invalid", name)
	}
}
