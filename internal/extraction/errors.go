package extraction

import "fmt"

// MinimumTextLength is the smallest extracted character count accepted as a
// usable resume. Anything shorter is treated as an empty or scanned-image
// document.
const MinimumTextLength = 50

// UnsupportedFormatError indicates a file extension outside the supported set.
type UnsupportedFormatError struct {
	Filename string
	Ext      string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s: only pdf, docx and txt are accepted", e.Ext, e.Filename)
}

// DocumentReadError indicates a file that matched a supported extension but
// could not be parsed, including recovered panics from malformed documents.
type DocumentReadError struct {
	Format  string
	Message string
	Cause   error
}

func (e *DocumentReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read %s document: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to read %s document: %s", e.Format, e.Message)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}

// InsufficientTextError indicates the document parsed but yielded too little
// text to analyze.
type InsufficientTextError struct {
	Length int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("extracted only %d characters of text (minimum %d); the file may be empty or image-based", e.Length, MinimumTextLength)
}
