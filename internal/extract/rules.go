package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fieldSpec is one target field: an ordered pattern list (most specific
// first) and the evidence weight the field contributes when any pattern
// matches. The first matching pattern wins; later ones are not tried.
type fieldSpec struct {
	name     string
	weight   float64
	patterns []*regexp.Regexp
}

// extractFields runs every field's pattern cascade against text.
// Confidence = matched weight / attempted weight × 100, rounded.
func extractFields(text string, specs []fieldSpec) (map[string]string, int) {
	values := make(map[string]string, len(specs))
	var attempted, matched float64

	for _, f := range specs {
		attempted += f.weight
		for _, re := range f.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			v := strings.TrimSpace(m[1])
			if v == "" {
				continue
			}
			values[f.name] = v
			matched += f.weight
			break
		}
	}

	if attempted == 0 {
		return values, 0
	}
	return values, int(math.Round(matched / attempted * 100))
}

// parseAmount parses "$2,450.00" style money strings.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// numberedBlockRe splits a section into numbered sub-blocks ("1. ", "2. "),
// so one malformed block cannot corrupt its neighbors.
var numberedBlockRe = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`)

// splitNumberedBlocks returns the numbered sub-blocks of a section. When no
// numbering markers exist the whole section is treated as a single block.
func splitNumberedBlocks(section string) []string {
	locs := numberedBlockRe.FindAllStringIndex(section, -1)
	if len(locs) == 0 {
		trimmed := strings.TrimSpace(section)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(section)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		b := strings.TrimSpace(section[loc[1]:end])
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// sectionAfter extracts the body of a named section: everything between the
// header match and the next known section header (or end of text).
func sectionAfter(text string, header *regexp.Regexp) string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if next := nextSectionRe.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	return body
}

var nextSectionRe = regexp.MustCompile(`(?im)^\s*(?:personal\s+information|credit\s+scores?|accounts?|account\s+information|tradelines|negative\s+items?|derogatory\s+(?:items?|marks?)|inquiries|credit\s+inquiries|public\s+records?|summary)\s*:?\s*$`)
