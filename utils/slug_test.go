package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "corporate-law", Slugify("Corporate Law"))
	assert.Equal(t, "mergers-acquisitions", Slugify("Mergers & Acquisitions"))
	assert.Equal(t, "startup-grant-2026", Slugify("  Startup Grant 2026! "))
	assert.Equal(t, "", Slugify("---"))
}
