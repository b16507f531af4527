package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

type DocumentStatus string

const (
	DocumentStatusProcessed DocumentStatus = "processed"
	DocumentStatusFailed    DocumentStatus = "failed"
)

type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
	FileTypeMD   FileType = "md"
)

// DetectFileType maps a filename extension onto the closed file-type enum.
// Anything outside the set is rejected before extraction is attempted.
func DetectFileType(filename string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FileTypePDF, nil
	case ".docx":
		return FileTypeDOCX, nil
	case ".txt":
		return FileTypeTXT, nil
	case ".md":
		return FileTypeMD, nil
	default:
		return "", WrapError(ErrUnsupportedFileType, "detect file type",
			errors.New("supported: .pdf, .docx, .txt, .md"))
	}
}

// ExtractedTask is a task candidate parsed out of an uploaded document. It is
// produced once at upload time and never mutated afterwards; Number keeps the
// integer captured from the source numbering token, duplicates included.
type ExtractedTask struct {
	Number         int          `json:"number"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Priority       TaskPriority `json:"priority"`
	EstimatedHours *int         `json:"estimatedHours"`
	SkillsRequired []string     `json:"skillsRequired"`
	Source         string       `json:"source"`
}

// Task provenance markers. Extraction-created tasks keep only this tag, no
// live link back to the source document.
const (
	TaskSourceExtraction = "pdf_extraction"
	TaskSourceManual     = "manual"
)

type Document struct {
	ID             string          `json:"id"`
	Filename       string          `json:"filename"`
	FileSize       int64           `json:"file_size"`
	FileType       FileType        `json:"file_type"`
	ExtractedText  string          `json:"extracted_text"`
	Requirements   []string        `json:"requirements"`
	ExtractedTasks []ExtractedTask `json:"extracted_tasks"`
	WordCount      int             `json:"word_count"`
	CharacterCount int             `json:"character_count"`
	UploadedBy     string          `json:"uploaded_by"`
	ProjectID      string          `json:"project_id,omitempty"`
	Status         DocumentStatus  `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}
