// Package imagegen produces child-friendly illustrations for answer options.
//
// A Source turns a short subject like "a red apple" into an inline data
// URI. Two variants exist: GeminiSource wraps the subject in a styled
// illustration prompt and renders it with Imagen, PexelsSource queries the
// subject verbatim against a photo library. Callers pick one at startup;
// the pipeline never branches on which.
package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrBlocked reports that the image service refused the prompt on safety
// grounds. Callers treat it the same as any other failure (null image), but
// it stays distinguishable for logging.
var ErrBlocked = errors.New("image generation blocked by safety filter")

// Source produces one image for a bare subject and returns it as a data
// URI suitable for direct use in an <img> tag. Each implementation shapes
// the subject into whatever its backend expects.
type Source interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// DataURI encodes raw image bytes as an inline data URI.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
