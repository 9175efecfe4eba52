package solo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	in := `<h2>Heading</h2><p>Some&nbsp;body text &amp; more.</p>`
	assert.Equal(t, "Heading Some body text & more.", stripHTML(in))
}

func TestCleanAssistOutput(t *testing.T) {
	in := "Sure! Here is a revised opening:\n```\nStronger first line.\n```"
	assert.Equal(t, "Stronger first line.", cleanAssistOutput(in))

	assert.Equal(t, "Plain suggestion.", cleanAssistOutput("Plain suggestion."))
}
