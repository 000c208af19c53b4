package textextract

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractText_ConcatenatesInInputOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/extract", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// echo the payload prefixed by the file name header
		_, _ = w.Write([]byte(r.Header.Get("X-File-Name") + ": " + string(body)))
	}))
	defer server.Close()

	extractor := NewHTTPTextExtractor(server.URL, server.Client(), zap.NewNop())

	text, err := extractor.ExtractText(context.Background(), []domain.FilePayload{
		{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("alpha")},
		{Name: "b.pdf", ContentType: "application/pdf", Data: []byte("beta")},
		{Name: "c.pdf", ContentType: "application/pdf", Data: []byte("gamma")},
	})

	require.NoError(t, err)
	assert.Equal(t, "a.pdf: alpha\n\nb.pdf: beta\n\nc.pdf: gamma", text)
}

func TestExtractText_NoFiles(t *testing.T) {
	extractor := NewHTTPTextExtractor("http://localhost:0", nil, zap.NewNop())

	text, err := extractor.ExtractText(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_FallsBackToDirectParseForPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	extractor := NewHTTPTextExtractor(server.URL, server.Client(), zap.NewNop())

	text, err := extractor.ExtractText(context.Background(), []domain.FilePayload{
		{Name: "notes.txt", ContentType: "text/plain", Data: []byte("readable text")},
	})

	require.NoError(t, err)
	assert.Equal(t, "readable text", text)
}

func TestExtractText_UnrecoverableBinaryFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	extractor := NewHTTPTextExtractor(server.URL, server.Client(), zap.NewNop())

	_, err := extractor.ExtractText(context.Background(), []domain.FilePayload{
		{Name: "scan.bin", ContentType: "application/octet-stream", Data: []byte{0xff, 0xfe, 0x00, 0x81}},
	})

	assert.Error(t, err)
}

func TestDirectParse(t *testing.T) {
	text, err := directParse(domain.FilePayload{ContentType: "text/markdown", Data: []byte("# heading")})
	require.NoError(t, err)
	assert.Equal(t, "# heading", text)

	// valid UTF-8 is accepted even without a text content type
	text, err = directParse(domain.FilePayload{ContentType: "application/json", Data: []byte(`{"a":1}`)})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)

	_, err = directParse(domain.FilePayload{ContentType: "image/png", Data: []byte{0xff, 0xfe, 0x00, 0x81}})
	assert.Error(t, err)
}
