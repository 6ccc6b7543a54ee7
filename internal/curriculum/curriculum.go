// Package curriculum holds the fixed subject > unit > topic taxonomy that
// generated questions must be tagged with. The LLM is instructed to pick
// from this list verbatim; the curriculum validator enforces it.
package curriculum

import (
	"fmt"
	"strings"
)

// Entry is one subject > unit > topic triple.
type Entry struct {
	Subject string
	Unit    string
	Topic   string
}

// Entries is the supported curriculum.
var Entries = []Entry{
	{"Quantitative Math", "Problem Solving", "Numbers and Operations"},
	{"Quantitative Math", "Problem Solving", "Algebra"},
	{"Quantitative Math", "Geometry and Measurement", "Area & Volume"},
	{"Quantitative Math", "Numbers and Operations", "Fractions, Decimals, & Percents"},
	{"Quantitative Math", "Data Analysis & Probability", "Probability (Basic, Compound Events)"},
	{"Quantitative Math", "Reasoning", "Word Problems"},
}

// Contains reports whether the triple matches an entry exactly.
func Contains(subject, unit, topic string) bool {
	for _, e := range Entries {
		if e.Subject == subject && e.Unit == unit && e.Topic == topic {
			return true
		}
	}
	return false
}

// PromptList renders the curriculum as the bulleted list embedded in prompts,
// one "- Subject > Unit > Topic" line per entry.
func PromptList() string {
	var b strings.Builder
	for _, e := range Entries {
		fmt.Fprintf(&b, "- %s > %s > %s\n", e.Subject, e.Unit, e.Topic)
	}
	return strings.TrimRight(b.String(), "\n")
}
