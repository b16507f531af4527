package extractor

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// extractPlaintext covers .txt and .md uploads; both are read as-is.
func extractPlaintext(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", domain.WrapError(domain.ErrEmptyOrUnreadable, "read text file",
			errors.New("file is not valid UTF-8 text"))
	}
	return string(data), nil
}
