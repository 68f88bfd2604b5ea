package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "admin",
			want:  "admin",
		},
		{
			name:  "whitespace trimmed",
			input: "  admin  ",
			want:  "admin",
		},
		{
			name:  "script block removed",
			input: `hello<script>alert("xss")</script>world`,
			want:  "helloworld",
		},
		{
			name:  "script block case insensitive",
			input: `<SCRIPT src="evil.js"></SCRIPT>name`,
			want:  "name",
		},
		{
			name:  "markup characters stripped",
			input: `o'brien <b>"bold"</b>`,
			want:  "obrien bbold/b",
		},
		{
			name:  "only markup collapses to empty",
			input: `<>"'`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeInput(tt.input))
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		require.Empty(t, ValidatePasswordStrength("Sup3rSecret!"))
	})

	t.Run("too short", func(t *testing.T) {
		errs := ValidatePasswordStrength("Ab1!")
		require.Len(t, errs, 1)
		require.Equal(t, "password", errs[0].Field)
	})

	t.Run("accumulates one error per unmet rule", func(t *testing.T) {
		errs := ValidatePasswordStrength("password")
		// Missing uppercase, digit and special character.
		require.Len(t, errs, 3)
	})

	t.Run("empty password fails every rule", func(t *testing.T) {
		require.Len(t, ValidatePasswordStrength(""), 5)
	})
}
