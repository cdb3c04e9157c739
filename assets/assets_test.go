package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailTemplates(t *testing.T) {
	templates := EmailTemplates()
	for _, name := range []string{"_base.gohtml", "_base.txt", "password_reset.gohtml", "password_reset.txt"} {
		_, err := fs.Stat(templates, name)
		assert.NoError(t, err, name)
	}
}

func TestStatic(t *testing.T) {
	entries, err := fs.ReadDir(Static(), ".")
	assert.NoError(t, err)
	assert.NotEmpty(t, entries)
}
