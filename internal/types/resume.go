// Package types provides type definitions for structured data used throughout the resume analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Link represents a hyperlink harvested from a resume document.
// Uniqueness key is the lower-cased URL; when two raw candidates collide,
// the one carrying non-empty anchor text wins.
type Link struct {
	URL        string `json:"url"`
	AnchorText string `json:"text"`
}

// ResumeDocument holds the extracted text and deduplicated links of one
// uploaded resume. It is produced once by the extraction step and is
// immutable afterward.
type ResumeDocument struct {
	Text  string `json:"text"`
	Links []Link `json:"links"`
}
