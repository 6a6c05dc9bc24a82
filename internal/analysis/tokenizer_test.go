package analysis

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(text string) []string {
	var out []string
	for tok := range Tokens(text) {
		out = append(out, tok)
	}
	return out
}

func TestTokens_SplitsOnSeparators(t *testing.T) {
	// Colon and slash are separators, tokens of length >= 2 survive.
	assert.Equal(t, []string{"면담", "방식", "대면", "화상"}, collect("면담 방식: 대면/화상"))
}

func TestTokens_DropsShortTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single hangul char dropped", "수 있다", []string{"있다"}},
		{"single ascii char dropped", "a bc", []string{"bc"}},
		{"digits kept", "30분 이상", []string{"30분", "이상"}},
		{"mixed alphanumeric", "OKR2024 목표", []string{"OKR2024", "목표"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.text))
		})
	}
}

func TestTokens_EmptyInput(t *testing.T) {
	assert.Empty(t, collect(""))
	assert.Empty(t, collect("  ,:/!  "))
}

func TestTokens_Restartable(t *testing.T) {
	seq := Tokens("면담이 도움이 되었다")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestTokens_EarlyStop(t *testing.T) {
	var got []string
	for tok := range Tokens("하나 둘씩 셋넷 다섯") {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"하나", "둘씩"}, got)
}
