package questiongen

import "testing"

func TestImageRefValidator(t *testing.T) {
	v := &ImageRefValidator{}
	base := "Look at the figure.\n\n![](https://example.com/fig.png)\n\nWhat is the area?"

	t.Run("reference preserved", func(t *testing.T) {
		q := validQuestion()
		q.Text = "Study the figure.\n\n![](https://example.com/fig.png)\n\nWhat is the perimeter?"
		if err := v.Validate(q, GenerateInput{Base: base}); err != nil {
			t.Fatalf("expected preserved reference to pass, got %v", err)
		}
	})

	t.Run("reference dropped", func(t *testing.T) {
		q := validQuestion()
		q.Text = "What is the perimeter?"
		if err := v.Validate(q, GenerateInput{Base: base}); err == nil {
			t.Fatal("expected dropped reference to fail")
		}
	})

	t.Run("reference rewritten", func(t *testing.T) {
		q := validQuestion()
		q.Text = "![](https://example.com/other.png)"
		if err := v.Validate(q, GenerateInput{Base: base}); err == nil {
			t.Fatal("expected rewritten reference to fail")
		}
	})

	t.Run("no base references", func(t *testing.T) {
		q := validQuestion()
		if err := v.Validate(q, GenerateInput{Base: "no images"}); err != nil {
			t.Fatalf("expected pass when base has no references, got %v", err)
		}
	})
}
