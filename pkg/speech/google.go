package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	speechapi "google.golang.org/api/speech/v1"
)

// GoogleTranscriber calls Cloud Speech-to-Text v1 speech:recognize.
type GoogleTranscriber struct {
	service      *speechapi.Service
	languageCode string
	timeout      time.Duration
}

var _ Transcriber = &GoogleTranscriber{}

func NewGoogleTranscriber(ctx context.Context, apiKey, endpoint, languageCode string, timeout time.Duration) (*GoogleTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("speech transcriber requires an API key")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := speechapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create speech service: %w", err)
	}

	if languageCode == "" {
		languageCode = "en-US"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GoogleTranscriber{
		service:      svc,
		languageCode: languageCode,
		timeout:      timeout,
	}, nil
}

func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", unintelligible()
	}

	format := detectFormat(audio)
	req := &speechapi.RecognizeRequest{
		Config: &speechapi.RecognitionConfig{
			Encoding:                   format.Encoding,
			SampleRateHertz:            format.SampleRateHertz,
			LanguageCode:               g.languageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechapi.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", classify(err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if t := strings.TrimSpace(result.Alternatives[0].Transcript); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return "", unintelligible()
	}

	return strings.Join(parts, " "), nil
}

func classify(err error) *Error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code >= http.StatusInternalServerError,
			apiErr.Code == http.StatusTooManyRequests,
			apiErr.Code == http.StatusForbidden:
			return unavailable(err)
		}
		if apiErr.Message != "" {
			return unknown(errors.New(apiErr.Message))
		}
		return unknown(err)
	}
	// anything that never produced an API response is a reachability problem
	return unavailable(err)
}
