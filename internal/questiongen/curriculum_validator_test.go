package questiongen

import "testing"

func TestCurriculumValidator(t *testing.T) {
	v := &CurriculumValidator{}

	q := validQuestion()
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("expected known curriculum entry to pass, got %v", err)
	}

	q.Topic = "Astrophysics"
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected unknown topic to fail")
	}
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !vErr.Retryable {
		t.Error("curriculum failures should be retryable")
	}
}
