package matching

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	separatorPattern     = regexp.MustCompile(`[\s_]+`)
	nonSlugPattern       = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRunPattern     = regexp.MustCompile(`-{2,}`)

	diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	eszettReplacer  = strings.NewReplacer("ß", "ss")
)

// Normalize canonicalizes a free-text modality or focus-area tag into a
// comparable slug. This is the only mechanism by which patient-chosen tags
// and therapist-chosen tags are matched; there is no fixed enum.
//
// "Somatic Experiencing", "somatic_experiencing" and "Somatic-Experiencing"
// all normalize to "somatic-experiencing"; parenthetical annotations like
// "NARM (Entwicklungstrauma)" are dropped.
func Normalize(raw string) string {
	folded, _, err := transform.String(diacriticFolder, eszettReplacer.Replace(raw))
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(folded)
	folded = parentheticalPattern.ReplaceAllString(folded, " ")
	folded = separatorPattern.ReplaceAllString(strings.TrimSpace(folded), "-")
	folded = nonSlugPattern.ReplaceAllString(folded, "")
	folded = hyphenRunPattern.ReplaceAllString(folded, "-")
	return strings.Trim(folded, "-")
}

// NormalizeSet normalizes every tag and drops the ones that fold to nothing.
func NormalizeSet(raw []string) map[string]struct{} {
	normalized := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		if slug := Normalize(tag); slug != "" {
			normalized[slug] = struct{}{}
		}
	}
	return normalized
}

func overlapCount(a, b map[string]struct{}) int {
	count := 0
	for tag := range a {
		if _, ok := b[tag]; ok {
			count++
		}
	}
	return count
}
