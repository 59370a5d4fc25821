package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Acme Bank", "Acme Bank"},
		{"clear screen", "Evil\x1b[2J\x1b[H", "Evil"},
		{"color", "\x1b[31mRed\x1b[0m Co", "Red Co"},
		{"hyperlink", "https://x.test\x07\x1b]8;;https://phish.test\x07", "https://x.test"},
		{"controls", "Tab\tNew\nLine\x7f", "TabNewLine"},
		{"unicode kept", "Åkeri — Göteborg", "Åkeri — Göteborg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}

func TestDecodeStripsTerminalSequences(t *testing.T) {
	data := []byte(`[{
		"name": "Evil\u001b[2J\u001b[H",
		"website": "https://x.test\u0007\u001b]8;;https://phish.test\u0007",
		"phone": "+1 555\u001b[8m 0100",
		"social": {"twitter": "\u001b]8;;https://phish.test\u0007https://twitter.test/evil"}
	}]`)

	recs, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, "Evil", recs[0].Name)
	assert.Equal(t, "https://x.test", recs[0].Website)
	assert.Equal(t, "+1 555 0100", recs[0].Phone)
	assert.Equal(t, "https://twitter.test/evil", recs[0].Twitter())
	assert.NotContains(t, recs[0].Link("website"), "phish")
}

func TestDecodeRejectsNameMadeOfEscapes(t *testing.T) {
	_, err := Decode([]byte("- name: \"\\e[2J\\e[H\"\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrEmptyName)
}
