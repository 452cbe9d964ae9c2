package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeKind(t *testing.T) {
	assert.Equal(t, TypeAdded, TypeKind("added"))
	assert.Equal(t, TypeChanged, TypeKind("Changed"))
	assert.Equal(t, TypeRemoved, TypeKind("REMOVED"))
	assert.Equal(t, "", TypeKind("hotfix"))
	assert.Equal(t, "", TypeKind(""))
}

func TestFilterUpdates(t *testing.T) {
	updates := []Update{
		{ID: 1, Type: "added", Content: "New search box", Author: "Alice"},
		{ID: 2, Type: "changed", Content: "Faster rendering", Author: "Bob"},
		{ID: 3, Type: "removed", Content: "Legacy API", Author: "alice"},
	}

	assert.Len(t, FilterUpdates(updates, ""), 3)
	assert.Len(t, FilterUpdates(updates, "   "), 3)

	byAuthor := FilterUpdates(updates, "ALICE")
	assert.Len(t, byAuthor, 2)

	byContent := FilterUpdates(updates, "rendering")
	assert.Len(t, byContent, 1)
	assert.EqualValues(t, 2, byContent[0].ID)

	byID := FilterUpdates(updates, "3")
	assert.Len(t, byID, 1)

	assert.Empty(t, FilterUpdates(updates, "nothing here"))
}
