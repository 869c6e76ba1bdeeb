package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	in := `<div><p>We need <b>Go</b> engineers.</p><ul><li>PostgreSQL</li><li>Redis</li></ul><script>track()</script></div>`
	assert.Equal(t, "We need Go engineers.\nPostgreSQL\nRedis", PlainText(in))
}

func TestPlainTextWithoutMarkup(t *testing.T) {
	assert.Equal(t, "plain text", PlainText("  plain text \n"))
}
