package domain

import "context"

// FilePayload is one uploaded file handed to the Text Extraction Service
type FilePayload struct {
	Name        string
	ContentType string
	Data        []byte
}

// TextExtractor defines the port for the generic text-extraction service
// (file/audio to plain text). Multiple payloads produce concatenated text in
// input order.
type TextExtractor interface {
	ExtractText(ctx context.Context, files []FilePayload) (string, error)
}
