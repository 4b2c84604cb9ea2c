// Package extraction turns uploaded resume files into plain text plus the
// hyperlinks they carry. PDF link annotations and DOCX hyperlink
// relationships are extracted with their anchor text; bare URLs in the
// visible text are scanned as a fallback and merged in behind them.
package extraction

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

var horizontalSpace = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)

// Extract parses a resume file into text and deduplicated links based on its
// extension. Supported formats are .pdf, .docx and .txt. Documents yielding
// fewer than MinimumTextLength characters are rejected.
func Extract(filename string, data []byte) (*types.ResumeDocument, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		doc *types.ResumeDocument
		err error
	)
	switch ext {
	case ".pdf":
		doc, err = extractPDF(data)
	case ".docx":
		doc, err = extractDocx(data)
	case ".txt":
		doc = &types.ResumeDocument{Text: string(data)}
	default:
		return nil, &UnsupportedFormatError{Filename: filename, Ext: ext}
	}
	if err != nil {
		return nil, err
	}

	doc.Text = normalizeText(doc.Text)
	if length := utf8.RuneCountInString(doc.Text); length < MinimumTextLength {
		return nil, &InsufficientTextError{Length: length}
	}

	// Format-native links first so their anchor text survives deduplication
	// against the same URLs found in the visible text.
	doc.Links = DedupLinks(append(doc.Links, ScanTextLinks(doc.Text)...))
	return doc, nil
}

// normalizeText collapses horizontal whitespace runs, trims each line and
// drops blank lines, preserving the one-line-per-statement structure the
// prompt stages expect.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = horizontalSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
