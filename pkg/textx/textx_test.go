package textx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hireline/hireline/pkg/textx"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello\nworld\t!", textx.SanitizeText("he\x00llo\nwo\x7frld\t!"))
	assert.Equal(t, "резюме", textx.SanitizeText("  резюме \x01"))
	assert.Equal(t, "", textx.SanitizeText("\x00\x1f"))
	assert.Equal(t, "plain text", textx.SanitizeText(" plain text \r\n"))
}
