package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

func TestScanTextLinks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			"Single https URL",
			"Find me at https://github.com/janedoe today",
			[]string{"https://github.com/janedoe"},
		},
		{
			"Plain http URL",
			"legacy: http://example.com/page",
			[]string{"http://example.com/page"},
		},
		{
			"Trailing punctuation trimmed",
			"Projects (https://github.com/janedoe/viz), then https://janedoe.dev.",
			[]string{"https://github.com/janedoe/viz", "https://janedoe.dev"},
		},
		{
			"Multiple URLs keep order",
			"https://a.example first https://b.example second",
			[]string{"https://a.example", "https://b.example"},
		},
		{"No URLs", "plain resume text without any links", nil},
		{"Bare domain is not a link", "see github.com/janedoe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := ScanTextLinks(tt.text)
			urls := make([]string, 0, len(links))
			for _, l := range links {
				assert.Empty(t, l.AnchorText)
				urls = append(urls, l.URL)
			}
			if tt.expected == nil {
				assert.Empty(t, urls)
				return
			}
			assert.Equal(t, tt.expected, urls)
		})
	}
}

func TestDedupLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    []types.Link
		expected []types.Link
	}{
		{
			"Anchored form wins over scanned duplicate",
			[]types.Link{
				{URL: "https://github.com/janedoe", AnchorText: "GitHub"},
				{URL: "https://github.com/janedoe"},
			},
			[]types.Link{{URL: "https://github.com/janedoe", AnchorText: "GitHub"}},
		},
		{
			"Later anchor fills earlier bare entry",
			[]types.Link{
				{URL: "https://github.com/janedoe"},
				{URL: "https://github.com/janedoe", AnchorText: "GitHub"},
			},
			[]types.Link{{URL: "https://github.com/janedoe", AnchorText: "GitHub"}},
		},
		{
			"Case-insensitive URL matching",
			[]types.Link{
				{URL: "https://Example.com/CV", AnchorText: "Portfolio"},
				{URL: "https://example.com/cv"},
			},
			[]types.Link{{URL: "https://Example.com/CV", AnchorText: "Portfolio"}},
		},
		{
			"First occurrence order preserved",
			[]types.Link{
				{URL: "https://b.example"},
				{URL: "https://a.example"},
				{URL: "https://b.example"},
			},
			[]types.Link{{URL: "https://b.example"}, {URL: "https://a.example"}},
		},
		{
			"Empty URLs dropped",
			[]types.Link{{URL: "   "}, {URL: "https://a.example"}},
			[]types.Link{{URL: "https://a.example"}},
		},
		{"Nil input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupLinks(tt.input)
			assert.Equal(t, tt.expected, result)

			// A second pass must change nothing.
			assert.Equal(t, tt.expected, DedupLinks(result))
		})
	}
}
