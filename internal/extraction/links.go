package extraction

import (
	"regexp"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// ScanTextLinks finds bare URLs in visible text. Scanned links carry no
// anchor text; annotation and hyperlink links take precedence during
// deduplication.
func ScanTextLinks(text string) []types.Link {
	matches := urlPattern.FindAllString(text, -1)
	links := make([]types.Link, 0, len(matches))
	for _, m := range matches {
		url := strings.TrimRight(m, ".,;:)]}'")
		if url == "" {
			continue
		}
		links = append(links, types.Link{URL: url})
	}
	return links
}

// DedupLinks removes duplicate URLs case-insensitively while preserving first
// occurrence order. When the same URL appears with and without anchor text,
// the anchored form wins regardless of position. The operation is idempotent.
func DedupLinks(links []types.Link) []types.Link {
	if len(links) == 0 {
		return nil
	}

	index := make(map[string]int, len(links))
	deduped := make([]types.Link, 0, len(links))
	for _, link := range links {
		url := strings.TrimSpace(link.URL)
		if url == "" {
			continue
		}
		key := strings.ToLower(url)
		if at, seen := index[key]; seen {
			if anchor := strings.TrimSpace(link.AnchorText); anchor != "" && deduped[at].AnchorText == "" {
				deduped[at].AnchorText = anchor
			}
			continue
		}
		index[key] = len(deduped)
		deduped = append(deduped, types.Link{URL: url, AnchorText: strings.TrimSpace(link.AnchorText)})
	}
	return deduped
}
