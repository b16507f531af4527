package extractor

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// extractPDF reads the text layer of a PDF. Corrupted, password-protected or
// oddly encoded files surface as ErrCorruptedSource so the caller can tell the
// user to resubmit a different file.
func extractPDF(path string) (text string, err error) {
	// The parser panics on some malformed inputs; treat that the same as a
	// parse error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.WrapError(domain.ErrCorruptedSource, "parse pdf",
				fmt.Errorf("parser panic: %v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", domain.WrapError(domain.ErrCorruptedSource, "open pdf", err)
	}
	defer f.Close()

	if reader.Trailer().Key("Encrypt").Kind() != pdf.Null {
		return "", domain.WrapError(domain.ErrCorruptedSource, "open pdf",
			errors.New("password-protected document"))
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", domain.WrapError(domain.ErrCorruptedSource, "parse pdf", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", domain.WrapError(domain.ErrCorruptedSource, "read pdf text", err)
	}
	return buf.String(), nil
}
