package passphrase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short input is padded", input: "abc", want: "abc0000000000000"},
		{name: "empty input becomes all pad chars", input: "", want: "0000000000000000"},
		{name: "exact length is unchanged", input: "0123456789abcdef", want: "0123456789abcdef"},
		{name: "longer input is not truncated", input: "a-much-longer-passphrase", want: "a-much-longer-passphrase"},
		{name: "surrounding whitespace is trimmed before padding", input: "  abc \t", want: "abc0000000000000"},
		{name: "multibyte characters count once", input: "пароль", want: "пароль0000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "a", "abc", " abc ", "0123456789abcdef", "x" + strings.Repeat("y", 40), "ключ", "\tpad me\n"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_AtLeastTargetLength(t *testing.T) {
	for _, in := range []string{"", "1", "123456789012345", "1234567890123456", "12345678901234567"} {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(Normalize(in)), TargetLength, "input %q", in)
	}
}

func TestNeedsPadding(t *testing.T) {
	assert.True(t, NeedsPadding("abc"))
	assert.True(t, NeedsPadding("   0123456789abcde   "))
	assert.False(t, NeedsPadding("0123456789abcdef"))
	assert.False(t, NeedsPadding(Normalize("abc")))
}
