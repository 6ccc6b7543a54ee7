package questiongen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Base:        "What is 2+2?\n(A) 3\n(B) 4",
		OptionCount: 2,
		Order:       3,
	})

	if !strings.Contains(msg, "What is 2+2?") {
		t.Error("base question missing from message")
	}
	if !strings.Contains(msg, "Question number: 3") {
		t.Error("order missing from message")
	}
	if !strings.Contains(msg, "Number of options required: 2") {
		t.Error("option count missing from message")
	}
	if !strings.Contains(msg, "Quantitative Math > Problem Solving > Algebra") {
		t.Error("curriculum list missing from message")
	}
}

func TestBuildUserMessage_DefaultOptionCount(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Base: "Solve for x: 3x = 12", Order: 1})

	if !strings.Contains(msg, "Number of options required: 4") {
		t.Error("expected default of four options when none detected")
	}
}
