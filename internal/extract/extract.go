package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/NehalVarma/smart-resume-screener/internal/shared/storage/object"
	"github.com/NehalVarma/smart-resume-screener/internal/shared/util"
)

// Text pulls plain text from a stored resume object and persists a derived
// .extracted.txt copy next to it.
// Library used: github.com/ledongthuc/pdf.
func Text(ctx context.Context, store object.Store, storageKey string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", storageKey, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: read: %w", storageKey, err)
	}

	text, err := TextFromBytes(raw, fileName)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", storageKey, err)
	}

	if err := saveExtracted(ctx, store, storageKey+".extracted.txt", text); err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", storageKey, err)
	}
	return text, nil
}

type keySaver interface {
	SaveWithKey(ctx context.Context, storageKey string, r io.Reader) (int64, error)
}

func saveExtracted(ctx context.Context, store object.Store, key string, text string) error {
	saver, ok := store.(keySaver)
	if !ok {
		return errors.New("object store does not support SaveWithKey")
	}
	if _, err := saver.SaveWithKey(ctx, key, strings.NewReader(text)); err != nil {
		return fmt.Errorf("save extracted key=%s: %w", key, err)
	}
	return nil
}

// TextFromBytes extracts text from an in-memory resume payload based on the
// file extension. PDF extraction tries a row-ordered pass per page first and
// falls back to the reader's plain-text stream; TXT payloads are decoded as
// UTF-8 with a Latin-1 fallback.
func TextFromBytes(data []byte, fileName string) (string, error) {
	switch util.FileExt(fileName) {
	case "pdf":
		return extractPDF(data)
	case "txt":
		return decodeText(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileName)
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}

	if text, err := extractPDFByRows(pdfReader); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	return extractPDFPlain(pdfReader)
}

// extractPDFByRows walks pages top-down row by row, which keeps multi-column
// resumes in reading order better than the raw content stream.
func extractPDFByRows(r *pdf.Reader) (string, error) {
	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return strings.Join(parts, "\n"), nil
}

func extractPDFPlain(r *pdf.Reader) (string, error) {
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// Latin-1: each byte maps directly to the code point of the same value.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
