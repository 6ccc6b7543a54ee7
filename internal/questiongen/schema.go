package questiongen

import "github.com/abhisek/quizforge/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "assessment-question",
	Description: "A single assessment question with options, answer and curriculum tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short, meaningful assessment title",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One-line assessment description",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question stem. LaTeX and ![](url) image references preserved verbatim.",
			},
			"instruction": map[string]any{
				"type":        "string",
				"description": "How the student should answer",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "moderate", "hard"},
				"description": "Self-assessed difficulty",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "The multiple-choice options, matching the requested option count",
			},
			"correct_option": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, verbatim from options",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Worked justification of the correct answer",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "Subject, exactly from the curriculum list",
			},
			"unit": map[string]any{
				"type":        "string",
				"description": "Unit, exactly from the curriculum list",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "Topic, exactly from the curriculum list",
			},
			"plus_marks": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Score for a correct answer, normally 1",
			},
		},
		"required": []any{"title", "description", "question", "instruction", "difficulty",
			"options", "correct_option", "explanation", "subject", "unit", "topic", "plus_marks"},
		"additionalProperties": false,
	},
}
