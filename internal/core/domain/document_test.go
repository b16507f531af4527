package domain

import "testing"

func TestDetectFileType(t *testing.T) {
	cases := map[string]FileType{
		"spec.pdf":   FileTypePDF,
		"SPEC.PDF":   FileTypePDF,
		"notes.docx": FileTypeDOCX,
		"plan.txt":   FileTypeTXT,
		"readme.md":  FileTypeMD,
	}
	for name, want := range cases {
		got, err := DetectFileType(name)
		if err != nil {
			t.Fatalf("DetectFileType(%q) error = %v", name, err)
		}
		if got != want {
			t.Fatalf("DetectFileType(%q) = %s, want %s", name, got, want)
		}
	}

	if _, err := DetectFileType("image.png"); !IsKind(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	if _, err := DetectFileType("archive"); !IsKind(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType for missing extension, got %v", err)
	}
}
