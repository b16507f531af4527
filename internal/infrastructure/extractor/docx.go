package extractor

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// extractDOCX reads word/document.xml from the .docx archive and flattens the
// paragraph text, one paragraph per line.
func extractDOCX(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", domain.WrapError(domain.ErrCorruptedSource, "open docx", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", domain.WrapError(domain.ErrCorruptedSource, "open docx",
			errors.New("word/document.xml not found in archive"))
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var out strings.Builder
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(current.String()); text != "" {
					out.WriteString(text)
					out.WriteByte('\n')
				}
			}
		}
	}
	return out.String(), nil
}
