package imagegen

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

const defaultPexelsBaseURL = "https://api.pexels.com/v1"

// PexelsSource resolves option labels to real photos via the Pexels search
// API. It is the photo-search alternative to generative illustration,
// selected by configuration.
type PexelsSource struct {
	httpClient *resty.Client
}

func NewPexelsSource(apiKey string) *PexelsSource {
	client := resty.New()
	client.SetBaseURL(defaultPexelsBaseURL)
	client.SetHeader("Authorization", apiKey)
	return &PexelsSource{httpClient: client}
}

// SetBaseURL overrides the API endpoint, for tests.
func (s *PexelsSource) SetBaseURL(url string) {
	s.httpClient.SetBaseURL(url)
}

func (s *PexelsSource) Close() error {
	return s.httpClient.Close()
}

type pexelsSearchResponse struct {
	Photos []struct {
		ID  int `json:"id"`
		Src struct {
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// Generate searches the subject verbatim. A short term like "cow" matches
// stock photos; a long styled prompt would match nothing, so the subject
// must stay unwrapped.
func (s *PexelsSource) Generate(ctx context.Context, subject string) (string, error) {
	response, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    subject,
			"per_page": "1",
		}).
		SetResult(&pexelsSearchResponse{}).
		Get("/search")
	if err != nil {
		return "", fmt.Errorf("pexels search: %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("pexels search error %d: %s", response.StatusCode(), response.String())
	}

	result := response.Result().(*pexelsSearchResponse)
	if result == nil || len(result.Photos) == 0 {
		// Nothing matched. Treat like a safety refusal so the caller
		// falls back to a null image rather than erroring the batch.
		return "", ErrBlocked
	}

	photoURL := result.Photos[0].Src.Medium
	photo, err := s.httpClient.R().
		SetContext(ctx).
		Get(photoURL)
	if err != nil {
		return "", fmt.Errorf("pexels fetch photo: %w", err)
	}
	if photo.IsError() {
		return "", fmt.Errorf("pexels fetch photo error %d", photo.StatusCode())
	}

	mime := photo.Header().Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}
	return DataURI(mime, photo.Bytes()), nil
}
