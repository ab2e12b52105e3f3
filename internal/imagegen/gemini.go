package imagegen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mochilabs/mochi/internal/safety"
)

const defaultImagenModel = "imagen-3.0-generate-002"

const illustrationTemplate = `A simple, bright, and joyful preschool illustration of %s. ` +
	`Clear shapes on a solid white background, 3D claymation style. ` +
	`No text, no clutter, very easy for a toddler to count. ` +
	`The image must contain nothing related to: %s.`

// illustrationPrompt wraps a bare subject in the house illustration style.
// The denylist exclusion catches hints that slipped past the topic-level
// screen.
func illustrationPrompt(subject string) string {
	return fmt.Sprintf(illustrationTemplate, subject, strings.Join(safety.Denylist(), ", "))
}

// GeminiSource renders illustrations with Imagen through the Gemini API.
type GeminiSource struct {
	client *genai.Client
	model  string
}

// NewGeminiSource wraps an existing genai client. The text provider and the
// image source share one connection and one API key.
func NewGeminiSource(client *genai.Client) *GeminiSource {
	return &GeminiSource{client: client, model: defaultImagenModel}
}

// Generate renders the subject as a styled illustration. Subjects arrive
// bare; photo-search sources query the same subject verbatim instead.
func (s *GeminiSource) Generate(ctx context.Context, subject string) (string, error) {
	resp, err := s.client.Models.GenerateImages(ctx, s.model, illustrationPrompt(subject), &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		AspectRatio:      "1:1",
		PersonGeneration: genai.PersonGenerationDontAllow,
	})
	if err != nil {
		return "", fmt.Errorf("imagen request: %w", err)
	}
	// Imagen signals a safety refusal by returning no images, not an error.
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", ErrBlocked
	}
	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return DataURI(mime, img.ImageBytes), nil
}
