package language

import (
	"testing"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	code, ok := d.Detect("The deployment pipeline failed again because the database migration was not applied")
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	code, ok = d.Detect("Nous devons terminer la migration de la base de données avant la fin de la semaine")
	assert.True(t, ok)
	assert.Equal(t, "fr", code)

	_, ok = d.Detect("   ")
	assert.False(t, ok)
}

func TestDistribution(t *testing.T) {
	d := NewDetector()
	dist := d.Distribution([]models.Note{
		{ID: "1", Content: "The deployment pipeline failed again because the database migration was not applied"},
		{ID: "2", Content: "Nous devons terminer la migration de la base de données avant la fin de la semaine"},
		{ID: "3", Content: ""},
	})
	assert.Equal(t, map[string]int{"en": 1, "fr": 1, Unknown: 1}, dist)
}
