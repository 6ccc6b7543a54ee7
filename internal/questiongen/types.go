package questiongen

// Question is a generated assessment question ready for document rendering.
type Question struct {
	// Title is a short, meaningful assessment title.
	Title string

	// Description is a one-line assessment description.
	Description string

	// Text is the question stem. LaTeX math notation and ![](url) image
	// references from the base question are preserved verbatim.
	Text string

	// Instruction tells the student how to answer.
	Instruction string

	// Difficulty is one of "easy", "moderate", "hard".
	Difficulty Difficulty

	// Order is the question number within the output document.
	Order int

	// Options are the multiple-choice options, in display order.
	// Matches the option count detected in the base question.
	Options []string

	// CorrectOption is the text of the correct option. Always one of Options.
	CorrectOption string

	// Explanation is a worked justification of the correct answer.
	Explanation string

	// Subject, Unit and Topic tag the question against the curriculum.
	// Each must exactly match a curriculum entry.
	Subject string
	Unit    string
	Topic   string

	// PlusMarks is the score awarded for a correct answer.
	PlusMarks int
}

// Difficulty is the LLM's self-assessed difficulty of a question.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// GenerateInput holds all context needed to generate one question variant.
type GenerateInput struct {
	// Base is the full base question text, including any markdown table
	// and ![](url) image references.
	Base string

	// OptionCount is the number of MCQ options detected in the base
	// question. Zero when the base carries no (A)..(E) markers; the
	// generator then asks for four options.
	OptionCount int

	// Order is the question number to assign in the output document.
	Order int
}
