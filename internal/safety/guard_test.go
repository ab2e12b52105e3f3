package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafe(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  bool
	}{
		{"plain animal topic", "Farm Animals", true},
		{"empty topic", "", true},
		{"exact denied term", "guns", false},
		{"denied term uppercase", "WEAPONS of history", false},
		{"denied term embedded", "gunslinger stories", false},
		{"denied term with padding", "  scary stories  ", false},
		{"war embedded in word", "dwarves", false},
		{"age marker", "18+ content", false},
		{"wholesome phrase", "counting with dinosaurs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafe(tt.topic))
		})
	}
}

func TestSanitize(t *testing.T) {
	topic, desc, substituted := Sanitize("Ocean Animals", "Learn about sea creatures")
	assert.False(t, substituted)
	assert.Equal(t, "Ocean Animals", topic)
	assert.Equal(t, "Learn about sea creatures", desc)

	topic, desc, substituted = Sanitize("sword fighting", "Medieval combat")
	assert.True(t, substituted)
	assert.Equal(t, FallbackTopic, topic)
	assert.Equal(t, FallbackDescription, desc)
}

func TestSanitize_UnsafeDescription(t *testing.T) {
	// A safe topic does not excuse an unsafe description; the pair is
	// substituted as a whole.
	topic, desc, substituted := Sanitize("History Stories", "a story about a gun fight")
	assert.True(t, substituted)
	assert.Equal(t, FallbackTopic, topic)
	assert.Equal(t, FallbackDescription, desc)
}

func TestDenylistCopy(t *testing.T) {
	terms := Denylist()
	terms[0] = "mutated"
	assert.False(t, IsSafe("gun show"))
}
