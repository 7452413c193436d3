package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryFrameworkResolves(t *testing.T) {
	for _, id := range IDs() {
		fw, ok := Get(id)
		require.True(t, ok, id)
		assert.Equal(t, id, fw.ID)
		assert.NotEmpty(t, fw.Name)
		assert.NotEmpty(t, fw.Categories, id)
	}
}

func TestUnknownFramework(t *testing.T) {
	_, ok := Get("HIPAA")
	assert.False(t, ok)
	_, ok = Get("")
	assert.False(t, ok)
}

func TestCatalogShape(t *testing.T) {
	for _, id := range IDs() {
		fw, _ := Get(id)
		for _, cat := range fw.Categories {
			assert.NotEmpty(t, cat.Name)
			assert.NotEmpty(t, cat.Description)
			require.NotEmpty(t, cat.Controls, "%s/%s", id, cat.Name)

			seen := map[string]bool{}
			for _, ctl := range cat.Controls {
				assert.NotEmpty(t, ctl.ID)
				assert.NotEmpty(t, ctl.Text)
				assert.NotEmpty(t, ctl.Recommendation)
				assert.False(t, seen[ctl.ID], "duplicate control %s in %s/%s", ctl.ID, id, cat.Name)
				seen[ctl.ID] = true
			}
		}
	}
}

func TestCategoryNamesOrdered(t *testing.T) {
	fw, _ := Get("NIST_CSF")
	assert.Equal(t, []string{"Identify", "Protect", "Detect", "Respond", "Recover"}, fw.CategoryNames())
}

func TestControlCount(t *testing.T) {
	for _, id := range IDs() {
		fw, _ := Get(id)
		n := 0
		for _, c := range fw.Categories {
			n += len(c.Controls)
		}
		assert.Equal(t, n, fw.ControlCount())
	}
}
