package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fumiama/go-docx"

	"github.com/abhisek/quizforge/internal/questiongen"
)

// WriteResult summarizes a written document.
type WriteResult struct {
	Path          string
	QuestionCount int
	ImageCount    int
}

// Writer assembles questions into a DOCX document on disk.
type Writer struct {
	resolver ImageResolver
}

// NewWriter creates a Writer. A nil resolver disables image embedding;
// image lines then fall back to their placeholder text.
func NewWriter(resolver ImageResolver) *Writer {
	return &Writer{resolver: resolver}
}

// Write renders the questions into a DOCX file at path. Image references on
// their own line are embedded as pictures; unresolvable images degrade to a
// placeholder line so one bad URL never loses the document.
func (w *Writer) Write(ctx context.Context, path string, questions []*questiongen.Question) (*WriteResult, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions to write")
	}

	doc := docx.New().WithDefaultTheme()

	heading := doc.AddParagraph()
	heading.AddText("Generated Questions").Size("32").Bold()
	doc.AddParagraph()

	imageCount := 0
	for i, q := range questions {
		sep := doc.AddParagraph()
		sep.AddText(fmt.Sprintf("--- Question %d ---", i+1)).Bold()

		for _, line := range Render(q) {
			if ref := ImageRefFromLine(line); ref != "" {
				if w.embedImage(ctx, doc, ref) {
					imageCount++
				}
				continue
			}
			doc.AddParagraph().AddText(line)
		}
		doc.AddParagraph()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing document: %w", err)
	}

	return &WriteResult{
		Path:          path,
		QuestionCount: len(questions),
		ImageCount:    imageCount,
	}, nil
}

// embedImage resolves and embeds one image, reporting success. Failures put
// a placeholder paragraph in the document instead.
func (w *Writer) embedImage(ctx context.Context, doc *docx.Docx, ref string) bool {
	if w.resolver == nil {
		doc.AddParagraph().AddText(fmt.Sprintf("[Image not found: %s]", ref))
		return false
	}

	data, err := w.resolver.Resolve(ctx, ref)
	if err != nil {
		p := doc.AddParagraph()
		p.AddText(fmt.Sprintf("[Failed to load image: %s]", ref))
		doc.AddParagraph().AddText(fmt.Sprintf("Error: %v", err))
		return false
	}

	if _, err := doc.AddParagraph().AddInlineDrawing(data); err != nil {
		p := doc.AddParagraph()
		p.AddText(fmt.Sprintf("[Failed to embed image: %s]", ref))
		doc.AddParagraph().AddText(fmt.Sprintf("Error: %v", err))
		return false
	}
	return true
}
