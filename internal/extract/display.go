package extract

import (
	"strings"
	"unicode"
)

// displayExceptions maps lowercase skill names whose canonical casing does
// not follow word title-casing.
var displayExceptions = map[string]string{
	"node.js":  "Node.js",
	"vue.js":   "Vue.js",
	"three.js": "Three.js",
	"next.js":  "Next.js",
}

// DisplayName returns the UI casing for a lowercase skill name. Known
// product names keep their canonical spelling; everything else gets each
// letter following a non-letter capitalized, so "ci/cd" becomes "Ci/Cd" and
// "rest api" becomes "Rest Api".
func DisplayName(skill string) string {
	if display, ok := displayExceptions[strings.ToLower(skill)]; ok {
		return display
	}
	return titleCase(skill)
}

func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return sb.String()
}
