package extraction

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// extractPDF walks every page collecting row text and link annotations. The
// underlying reader panics on malformed cross-reference tables and content
// streams, so the whole walk runs under a recover that surfaces a
// DocumentReadError instead.
func extractPDF(data []byte) (doc *types.ResumeDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &DocumentReadError{Format: "pdf", Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentReadError{Format: "pdf", Message: "cannot open document", Cause: err}
	}

	var (
		pages []string
		links []types.Link
	)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, spans := pageText(page)
		if text != "" {
			pages = append(pages, text)
		}
		links = append(links, pageLinks(page, spans)...)
	}

	return &types.ResumeDocument{Text: strings.Join(pages, "\n"), Links: links}, nil
}

// pageText renders one page top to bottom and returns both the text and the
// positioned spans, which link annotations later match against.
func pageText(page pdf.Page) (string, []pdf.Text) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", nil
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })

	var (
		lines []string
		spans []pdf.Text
	)
	for _, row := range rows {
		fragments := make([]pdf.Text, len(row.Content))
		copy(fragments, row.Content)
		sort.Slice(fragments, func(i, j int) bool { return fragments[i].X < fragments[j].X })

		spans = append(spans, fragments...)
		if text := strings.TrimSpace(joinSpans(fragments)); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n"), spans
}

// joinSpans concatenates fragments, inserting a space at row changes and at
// horizontal gaps wider than the font-size threshold. Generators that emit one
// fragment per glyph would otherwise read as "G i t H u b".
func joinSpans(spans []pdf.Text) string {
	var sb strings.Builder
	for i, span := range spans {
		if i > 0 {
			prev := spans[i-1]
			if math.Abs(span.Y-prev.Y) > 0.9 || span.X-(prev.X+prev.W) > spaceThreshold(prev.FontSize) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(span.S)
	}
	return sb.String()
}

func spaceThreshold(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.5
	}
	return fontSize * 0.3
}

// pageLinks reads URI link annotations and binds each to the text spans that
// fall inside its rectangle, so a hyperlinked "GitHub" yields both the target
// URL and its visible anchor.
func pageLinks(page pdf.Page, spans []pdf.Text) []types.Link {
	annots := page.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}

	var links []types.Link
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Kind() != pdf.Dict || annot.Key("Subtype").Name() != "Link" {
			continue
		}
		action := annot.Key("A")
		if action.Kind() != pdf.Dict || action.Key("S").Name() != "URI" {
			continue
		}
		uri := action.Key("URI")
		if uri.Kind() != pdf.String {
			continue
		}
		target := strings.TrimSpace(uri.RawString())
		if !isSupportedURI(target) {
			continue
		}
		links = append(links, types.Link{URL: target, AnchorText: anchorWithin(annot.Key("Rect"), spans)})
	}
	return links
}

// anchorWithin joins the spans overlapping a link rectangle into anchor text.
func anchorWithin(rect pdf.Value, spans []pdf.Text) string {
	if rect.Kind() != pdf.Array || rect.Len() != 4 {
		return ""
	}
	x0, y0 := rect.Index(0).Float64(), rect.Index(1).Float64()
	x1, y1 := rect.Index(2).Float64(), rect.Index(3).Float64()
	llx, urx := math.Min(x0, x1), math.Max(x0, x1)
	lly, ury := math.Min(y0, y1), math.Max(y0, y1)

	const tolerance = 2.0
	var selected []pdf.Text
	for _, span := range spans {
		if span.Y < lly-tolerance || span.Y > ury+tolerance {
			continue
		}
		if span.X+span.W < llx-tolerance || span.X > urx+tolerance {
			continue
		}
		selected = append(selected, span)
	}
	return collapseWhitespace(joinSpans(selected))
}
