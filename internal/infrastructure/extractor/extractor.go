// Package extractor converts uploaded files into cleaned plain text. Dispatch
// is by file extension; PDF parse failures never fall back to reading the
// binary as text, since that produced garbled output in practice.
package extractor

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// MinTextLength is the post-cleanup threshold below which extraction is
// reported as unreadable rather than an empty success.
const MinTextLength = 10

type Service struct{}

func New() *Service {
	return &Service{}
}

func (s *Service) Extract(ctx context.Context, path string, fileType domain.FileType) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		raw string
		err error
	)
	switch fileType {
	case domain.FileTypePDF:
		raw, err = extractPDF(path)
	case domain.FileTypeDOCX:
		raw, err = extractDOCX(path)
	case domain.FileTypeTXT, domain.FileTypeMD:
		raw, err = extractPlaintext(path)
	default:
		return "", domain.WrapError(domain.ErrUnsupportedFileType, "extract",
			errors.New(string(fileType)))
	}
	if err != nil {
		return "", err
	}

	text := Normalize(raw)
	if hasPDFArtifacts(text) {
		text = scrubPDFArtifacts(text)
	}
	if len(text) < MinTextLength {
		return "", domain.WrapError(domain.ErrEmptyOrUnreadable, "extract",
			errors.New("no readable text found in the uploaded file"))
	}
	return text, nil
}

var multiNewline = regexp.MustCompile(`\n{3,}`)

// Normalize strips carriage returns, collapses runs of three or more newlines
// to exactly two and trims surrounding whitespace.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

var pdfObjMarker = regexp.MustCompile(`\d+\s+\d+\s+obj`)

func hasPDFArtifacts(text string) bool {
	return strings.Contains(text, "%PDF-") ||
		strings.Contains(text, "endobj") ||
		pdfObjMarker.MatchString(text)
}

var pdfScrubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`%PDF-.*?\n`),
	regexp.MustCompile(`(?s)\d+\s+\d+\s+obj.*?endobj`),
	regexp.MustCompile(`(?s)xref.*?startxref`),
	regexp.MustCompile(`(?s)trailer.*?%%EOF`),
	regexp.MustCompile(`(?s)stream.*?endstream`),
	regexp.MustCompile(`(?s)<<.*?>>`),
	regexp.MustCompile(`/[A-Za-z]+\s+\d+`),
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`\(.*?\)`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// scrubPDFArtifacts is the best-effort secondary cleanup for text that leaked
// raw PDF container syntax through a partial parse.
func scrubPDFArtifacts(text string) string {
	for _, re := range pdfScrubPatterns {
		text = re.ReplaceAllString(text, "")
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
