package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTypeValid(t *testing.T) {
	tests := []struct {
		name     string
		et       EntityType
		expected bool
	}{
		{name: "article", et: EntityTypeArticle, expected: true},
		{name: "story", et: EntityTypeStory, expected: true},
		{name: "document", et: EntityTypeDocument, expected: true},
		{name: "empty", et: EntityType(""), expected: false},
		{name: "plural is not a type", et: EntityType("articles"), expected: false},
		{name: "unknown", et: EntityType("wallet"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.et.Valid())
		})
	}
}

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		input    string
		expected EntityType
		wantErr  bool
	}{
		{input: "article", expected: EntityTypeArticle},
		{input: "articles", expected: EntityTypeArticle},
		{input: "Stories", expected: EntityTypeStory},
		{input: " gallery ", expected: EntityTypeGallery},
		{input: "galleries", expected: EntityTypeGallery},
		{input: "albums", expected: EntityTypeAlbum},
		{input: "docs", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			et, err := ParseEntityType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownEntityType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, et)
		})
	}
}

func TestEntityTypesCoversPlurals(t *testing.T) {
	seen := make(map[EntityType]bool)
	for _, et := range plurals {
		seen[et] = true
	}
	for _, et := range EntityTypes {
		assert.True(t, seen[et], "missing plural for %s", et)
	}
	assert.Len(t, plurals, len(EntityTypes))
}
