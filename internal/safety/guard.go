// Package safety screens requested topics before any content generation.
package safety

import "strings"

// denylist holds terms that must never reach the generation pipeline.
// Matching is case-insensitive substring: "gunfire" is caught by "gun".
var denylist = []string{
	"gun", "weapon", "knife", "sword", "blood", "gore",
	"violence", "kill", "death", "war", "bomb",
	"scary", "fight", "monster", "18+",
}

// Fallback topic substituted for anything flagged by IsSafe.
const (
	FallbackTopic       = "Happy Puppies"
	FallbackDescription = "Learn about friendly puppies playing in a garden."
)

// IsSafe reports whether the topic is acceptable for young children.
func IsSafe(topic string) bool {
	normalized := strings.ToLower(strings.TrimSpace(topic))
	for _, term := range denylist {
		if strings.Contains(normalized, term) {
			return false
		}
	}
	return true
}

// Sanitize returns the topic and description unchanged when both are safe,
// or the fallback pair when either is flagged. The third return reports
// whether a substitution happened.
func Sanitize(topic, description string) (string, string, bool) {
	if IsSafe(topic) && IsSafe(description) {
		return topic, description, false
	}
	return FallbackTopic, FallbackDescription, true
}

// Denylist returns the screened terms, for prompt construction.
func Denylist() []string {
	out := make([]string, len(denylist))
	copy(out, denylist)
	return out
}
