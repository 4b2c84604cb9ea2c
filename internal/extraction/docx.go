package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

var (
	xmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	hyperlinkPattern = regexp.MustCompile(`(?s)<w:hyperlink[^>]*?r:id="([^"]+)"[^>]*?>(.*?)</w:hyperlink>`)
)

// relationships mirrors the subset of word/_rels/document.xml.rels needed to
// resolve hyperlink targets.
type relationships struct {
	Rels []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func extractDocx(data []byte) (*types.ResumeDocument, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentReadError{Format: "docx", Message: "not a valid docx archive", Cause: err}
	}

	docXML, err := readArchiveFile(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}
	if len(docXML) == 0 {
		return nil, &DocumentReadError{Format: "docx", Message: "missing word/document.xml"}
	}

	// The rels part is optional; a document without hyperlinks may omit it.
	relsXML, err := readArchiveFile(zr, "word/_rels/document.xml.rels")
	if err != nil {
		return nil, err
	}

	raw := string(docXML)
	return &types.ResumeDocument{
		Text:  docxText(raw),
		Links: docxLinks(raw, relsXML),
	}, nil
}

func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &DocumentReadError{Format: "docx", Message: "cannot open " + name, Cause: err}
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, &DocumentReadError{Format: "docx", Message: "cannot read " + name, Cause: err}
		}
		return content, nil
	}
	return nil, nil
}

// docxText flattens WordprocessingML into plain text: paragraph ends become
// newlines, tabs and breaks are preserved, every other tag is stripped.
func docxText(raw string) string {
	text := strings.ReplaceAll(raw, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = strings.ReplaceAll(text, "<w:br/>", "\n")
	text = xmlTagPattern.ReplaceAllString(text, " ")
	return html.UnescapeString(text)
}

// docxLinks resolves explicit hyperlink runs to their relationship targets,
// pairing each with the anchor text visible in the document.
func docxLinks(raw string, relsXML []byte) []types.Link {
	if len(relsXML) == 0 {
		return nil
	}

	var rels relationships
	if err := xml.Unmarshal(relsXML, &rels); err != nil {
		return nil
	}
	targets := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		if !strings.HasSuffix(rel.Type, "/hyperlink") {
			continue
		}
		if !isSupportedURI(rel.Target) {
			continue
		}
		targets[rel.ID] = rel.Target
	}
	if len(targets) == 0 {
		return nil
	}

	var links []types.Link
	for _, m := range hyperlinkPattern.FindAllStringSubmatch(raw, -1) {
		target, ok := targets[m[1]]
		if !ok {
			continue
		}
		anchor := collapseWhitespace(html.UnescapeString(xmlTagPattern.ReplaceAllString(m[2], " ")))
		links = append(links, types.Link{URL: target, AnchorText: anchor})
	}
	return links
}

// isSupportedURI reports whether a link target is worth surfacing to the
// analysis: web URLs and email addresses, not internal bookmarks or file refs.
func isSupportedURI(target string) bool {
	lower := strings.ToLower(strings.TrimSpace(target))
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
