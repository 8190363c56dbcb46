package versions_test

import (
	"testing"

	"github.com/quotienthq/quotient/testutil"
	"github.com/quotienthq/quotient/versions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	store := versions.NewStore(nil)
	doc := testutil.ShowroomDocument()

	store.Save(doc, "first draft")
	store.Save(doc, "sent to client")
	doc.Client.Name = "Verma Residence"
	store.Save(doc, "revised for Verma")

	t.Run("note match", func(t *testing.T) {
		results := store.Search("draft")
		require.Len(t, results, 1)
		assert.Equal(t, 1, results[0].Version.Number)
	})

	t.Run("client and note outrank item", func(t *testing.T) {
		results := store.Search("verma")
		require.Len(t, results, 1)
		assert.Equal(t, 3, results[0].Version.Number)
	})

	t.Run("item name matches every version", func(t *testing.T) {
		results := store.Search("wardrobe")
		assert.Len(t, results, 3)
	})

	t.Run("ties rank newest first", func(t *testing.T) {
		results := store.Search("wardrobe")
		require.NotEmpty(t, results)
		assert.Equal(t, 3, results[0].Version.Number)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.NotEmpty(t, store.Search("MEHTA"))
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, store.Search("   "))
	})
}
