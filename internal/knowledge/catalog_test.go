package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stemtutor/pkg/types"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Len(t, catalog, 16)

	seen := make(map[string]bool)
	for _, e := range catalog {
		assert.True(t, e.Subject.Valid(), "entry %s has invalid subject", e.TopicID)
		assert.NotEmpty(t, e.TopicID)
		assert.NotEmpty(t, e.Keywords, "entry %s has no keywords", e.TopicID)
		assert.NotEmpty(t, e.Content, "entry %s has no content", e.TopicID)

		key := string(e.Subject) + "/" + e.TopicID
		assert.False(t, seen[key], "duplicate entry %s", key)
		seen[key] = true
	}
}

func TestDefaultCatalog_NewtonLawTopics(t *testing.T) {
	kb := NewDefault(nil)

	for num, topicID := range lawTopics {
		entry, ok := kb.Get(types.SubjectPhysics, topicID)
		require.True(t, ok, "law %d topic %s missing", num, topicID)
		assert.Contains(t, strings.ToLower(entry.Content), "newton")
	}
	assert.Len(t, lawTopics, 3)
}

func TestEntry_EmbedText(t *testing.T) {
	e := Entry{
		TopicID:  "gravity",
		Keywords: []string{"gravity", "weight"},
		Content:  "Gravity attracts masses.",
	}

	text := e.EmbedText()
	assert.Contains(t, text, "gravity")
	assert.Contains(t, text, "weight")
	assert.Contains(t, text, "Gravity attracts masses.")
}

func TestSuggestions(t *testing.T) {
	for _, subject := range types.AllSubjects {
		s := Suggestions(subject)
		assert.NotEmpty(t, s)
		assert.NotEqual(t, genericSuggestions, s, "subject %s fell back to generic", subject)
	}

	// Unknown or empty subject gets the cross-subject list.
	assert.Equal(t, genericSuggestions, Suggestions(""))
	assert.Equal(t, genericSuggestions, Suggestions(types.Subject("astrology")))
	assert.Contains(t, genericSuggestions, "Physics")
	assert.Contains(t, genericSuggestions, "Math")
}
