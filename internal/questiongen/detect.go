package questiongen

import (
	"regexp"
	"strings"
)

// optionMarker matches MCQ option labels like "(A)" or "(c)".
var optionMarker = regexp.MustCompile(`\(([A-Ea-e])\)`)

// imageRef matches markdown image references of the form ![](ref).
var imageRef = regexp.MustCompile(`!\[\]\(([^)]+)\)`)

// DetectOptionCount returns the number of distinct MCQ option labels
// present in the base question. "(a)" and "(A)" count as one label.
func DetectOptionCount(base string) int {
	seen := make(map[string]struct{})
	for _, m := range optionMarker.FindAllStringSubmatch(base, -1) {
		seen[strings.ToUpper(m[1])] = struct{}{}
	}
	return len(seen)
}

// ImageRefs returns the image references embedded in the text, in order.
func ImageRefs(text string) []string {
	var refs []string
	for _, m := range imageRef.FindAllStringSubmatch(text, -1) {
		refs = append(refs, strings.TrimSpace(m[1]))
	}
	return refs
}
