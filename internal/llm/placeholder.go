package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/quizforge/internal/curriculum"
)

var (
	optionCountHint = regexp.MustCompile(`Number of options required: (\d+)`)
	orderHint       = regexp.MustCompile(`Question number: (\d+)`)
	imageRefHint    = regexp.MustCompile(`!\[\]\([^)]+\)`)
)

// placeholderResponse synthesizes a deterministic question for placeholder
// mode. Option count, question number and image references are lifted from
// the request text so the result passes the same validation a model response
// would.
func placeholderResponse(req Request) *Response {
	var b strings.Builder
	for _, m := range req.Messages {
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	prompt := b.String()

	optionCount := 4
	if m := optionCountHint.FindStringSubmatch(prompt); m != nil {
		if n, _ := strconv.Atoi(m[1]); n > 0 {
			optionCount = n
		}
	}

	order := 1
	if m := orderHint.FindStringSubmatch(prompt); m != nil {
		if n, _ := strconv.Atoi(m[1]); n > 0 {
			order = n
		}
	}

	question := fmt.Sprintf("What is %d + %d?", order, order)
	for _, ref := range imageRefHint.FindAllString(prompt, -1) {
		question += "\n\n" + ref
	}

	options := make([]string, optionCount)
	for i := range options {
		options[i] = strconv.Itoa(order*2 + i)
	}

	entry := curriculum.Entries[0]
	out := map[string]any{
		"title":          fmt.Sprintf("Placeholder Question %d", order),
		"description":    "Canned question produced without a model",
		"question":       question,
		"instruction":    "Choose the correct option.",
		"difficulty":     "easy",
		"options":        options,
		"correct_option": options[0],
		"explanation":    fmt.Sprintf("%d + %d = %d.", order, order, order*2),
		"subject":        entry.Subject,
		"unit":           entry.Unit,
		"topic":          entry.Topic,
		"plus_marks":     1,
	}
	raw, _ := json.Marshal(out)

	return &Response{
		Content:    raw,
		Model:      "mock",
		StopReason: "end",
	}
}
