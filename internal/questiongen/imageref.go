package questiongen

import "fmt"

// ImageRefValidator checks that every image reference from the base question
// survives into the generated question text. Variants must keep the original
// figures, so a dropped or rewritten reference is a generation failure.
type ImageRefValidator struct{}

func (v *ImageRefValidator) Name() string { return "image-ref" }

func (v *ImageRefValidator) Validate(q *Question, input GenerateInput) error {
	baseRefs := ImageRefs(input.Base)
	if len(baseRefs) == 0 {
		return nil
	}

	got := make(map[string]struct{})
	for _, ref := range ImageRefs(q.Text) {
		got[ref] = struct{}{}
	}

	for _, ref := range baseRefs {
		if _, ok := got[ref]; !ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("image reference %q from the base question is missing", ref),
				Retryable: true,
			}
		}
	}
	return nil
}
