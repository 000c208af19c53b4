package textextract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"skillforge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HTTPTextExtractor implements domain.TextExtractor against the external
// text-extraction service. Files are extracted concurrently and the results
// concatenated in input order. When the service rejects a file the adapter
// falls back to a direct parse of the payload.
type HTTPTextExtractor struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPTextExtractor creates a new instance of HTTPTextExtractor.
func NewHTTPTextExtractor(baseURL string, client *http.Client, logger *zap.Logger) domain.TextExtractor {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTextExtractor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// ExtractText implements domain.TextExtractor
func (e *HTTPTextExtractor) ExtractText(ctx context.Context, files []domain.FilePayload) (string, error) {
	if len(files) == 0 {
		return "", nil
	}

	results := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, file := range files {
		g.Go(func() error {
			text, err := e.extractOne(gctx, file)
			if err != nil {
				e.logger.Warn("Extraction service failed for file, trying direct parse",
					zap.String("file", file.Name),
					zap.Error(err))
				text, err = directParse(file)
				if err != nil {
					return err
				}
			}
			results[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	var nonEmpty []string
	for _, text := range results {
		if strings.TrimSpace(text) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(text))
		}
	}
	return strings.Join(nonEmpty, "\n\n"), nil
}

func (e *HTTPTextExtractor) extractOne(ctx context.Context, file domain.FilePayload) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", bytes.NewReader(file.Data))
	if err != nil {
		return "", err
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-File-Name", file.Name)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction service returned status %d for %s", resp.StatusCode, file.Name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// directParse is the single-file fallback path: plain-text payloads are
// usable as-is, anything else cannot be recovered locally.
func directParse(file domain.FilePayload) (string, error) {
	if strings.HasPrefix(file.ContentType, "text/") || utf8.Valid(file.Data) {
		return string(file.Data), nil
	}
	return "", fmt.Errorf("cannot parse %s (%s) without extraction service", file.Name, file.ContentType)
}

var _ domain.TextExtractor = (*HTTPTextExtractor)(nil)
