package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/document"
	"github.com/abhisek/quizforge/internal/input"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/questiongen"
	"github.com/abhisek/quizforge/internal/store"
)

// stubGenerator returns canned results keyed by call index.
type stubGenerator struct {
	calls  int
	failOn map[int]error // 1-based call index -> error
}

func (g *stubGenerator) Generate(_ context.Context, in questiongen.GenerateInput) (*questiongen.Question, error) {
	g.calls++
	if err, ok := g.failOn[g.calls]; ok {
		return nil, err
	}
	return &questiongen.Question{
		Title:      fmt.Sprintf("Question %d", in.Order),
		Text:       "stub",
		Order:      in.Order,
		Difficulty: questiongen.DifficultyEasy,
	}, nil
}

// stubWriter records what it was asked to write.
type stubWriter struct {
	path      string
	questions []*questiongen.Question
	err       error
}

func (w *stubWriter) Write(_ context.Context, path string, questions []*questiongen.Question) (*document.WriteResult, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.path = path
	w.questions = questions
	return &document.WriteResult{Path: path, QuestionCount: len(questions)}, nil
}

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	generations []store.GenerationEventData
	documents   []store.DocumentEventData
}

func (r *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (r *fakeEventRepo) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	r.generations = append(r.generations, data)
	return nil
}

func (r *fakeEventRepo) AppendDocument(_ context.Context, data store.DocumentEventData) error {
	r.documents = append(r.documents, data)
	return nil
}

func (r *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (r *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func bases(texts ...string) []*input.BaseQuestion {
	var out []*input.BaseQuestion
	for _, t := range texts {
		out = append(out, &input.BaseQuestion{Text: t})
	}
	return out
}

func TestService_Run(t *testing.T) {
	gen := &stubGenerator{}
	writer := &stubWriter{}
	events := &fakeEventRepo{}
	svc := NewService(gen, writer, events, io.Discard)

	res, err := svc.Run(context.Background(), bases("base one", "base two"), 2, "/tmp/out.docx")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Generated != 4 {
		t.Errorf("expected 4 generated, got %d", res.Generated)
	}
	if res.Failed != 0 {
		t.Errorf("expected 0 failed, got %d", res.Failed)
	}
	if res.RunID == "" {
		t.Error("expected a run ID")
	}
	if len(writer.questions) != 4 {
		t.Errorf("expected 4 questions written, got %d", len(writer.questions))
	}
	for i, q := range writer.questions {
		if q.Order != i+1 {
			t.Errorf("question %d has order %d", i, q.Order)
		}
	}
	if len(events.generations) != 4 {
		t.Errorf("expected 4 generation events, got %d", len(events.generations))
	}
	if len(events.documents) != 1 {
		t.Fatalf("expected 1 document event, got %d", len(events.documents))
	}
	if events.documents[0].RunID != res.RunID {
		t.Error("document event must carry the run ID")
	}
}

func TestService_Run_PartialFailure(t *testing.T) {
	vErr := &questiongen.ValidationError{Validator: "structural", Message: "no options", Retryable: true}
	gen := &stubGenerator{failOn: map[int]error{2: fmt.Errorf("question rejected: %w", vErr)}}
	writer := &stubWriter{}
	events := &fakeEventRepo{}
	svc := NewService(gen, writer, events, io.Discard)

	res, err := svc.Run(context.Background(), bases("base"), 3, "/tmp/out.docx")
	if err != nil {
		t.Fatalf("a single failed question must not fail the run: %v", err)
	}

	if res.Generated != 2 || res.Failed != 1 {
		t.Errorf("expected 2 generated / 1 failed, got %d / %d", res.Generated, res.Failed)
	}
	if len(writer.questions) != 2 {
		t.Errorf("expected 2 questions written, got %d", len(writer.questions))
	}

	var failed *store.GenerationEventData
	for i := range events.generations {
		if !events.generations[i].Valid {
			failed = &events.generations[i]
		}
	}
	if failed == nil {
		t.Fatal("expected a failed generation event")
	}
	if failed.Validator != "structural" {
		t.Errorf("expected validator name on the event, got %q", failed.Validator)
	}
	if !strings.Contains(failed.ErrorMessage, "no options") {
		t.Errorf("unexpected error message %q", failed.ErrorMessage)
	}
}

func TestService_Run_AllFailed(t *testing.T) {
	gen := &stubGenerator{failOn: map[int]error{1: errors.New("boom"), 2: errors.New("boom")}}
	svc := NewService(gen, &stubWriter{}, &fakeEventRepo{}, io.Discard)

	_, err := svc.Run(context.Background(), bases("base"), 2, "/tmp/out.docx")
	if err == nil {
		t.Fatal("expected error when every generation fails")
	}
	if !strings.Contains(err.Error(), "all 2 generation attempts failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_Run_WriterError(t *testing.T) {
	gen := &stubGenerator{}
	writer := &stubWriter{err: errors.New("disk full")}
	svc := NewService(gen, writer, &fakeEventRepo{}, io.Discard)

	_, err := svc.Run(context.Background(), bases("base"), 1, "/tmp/out.docx")
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected writer error to surface, got %v", err)
	}
}

func TestService_Run_NoBases(t *testing.T) {
	svc := NewService(&stubGenerator{}, &stubWriter{}, &fakeEventRepo{}, io.Discard)
	if _, err := svc.Run(context.Background(), nil, 1, "/tmp/out.docx"); err == nil {
		t.Fatal("expected error for empty base list")
	}
}

func TestService_Run_PlaceholderProviderWritesDocument(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"

	provider, err := llm.NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}

	gen := questiongen.NewLLMGenerator(provider, questiongen.DefaultConfig())
	events := &fakeEventRepo{}
	svc := NewService(gen, document.NewWriter(nil), events, io.Discard)

	path := filepath.Join(t.TempDir(), "out.docx")
	res, err := svc.Run(context.Background(), bases("What is 2+2?\n(A) 3\n(B) 4\n(C) 5\n(D) 6"), 2, path)
	if err != nil {
		t.Fatalf("placeholder mode must produce a document: %v", err)
	}

	if res.Generated != 2 || res.Failed != 0 {
		t.Errorf("expected 2 generated / 0 failed, got %d / %d", res.Generated, res.Failed)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("document is empty")
	}
	if len(events.documents) != 1 {
		t.Errorf("expected 1 document event, got %d", len(events.documents))
	}
}

func TestService_Run_DetectsOptionCount(t *testing.T) {
	gen := &stubGenerator{}
	events := &fakeEventRepo{}
	svc := NewService(gen, &stubWriter{}, events, io.Discard)

	base := "Pick one.\n(A) x\n(B) y\n(C) z"
	if _, err := svc.Run(context.Background(), bases(base), 1, "/tmp/out.docx"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if events.generations[0].OptionCount != 3 {
		t.Errorf("expected option count 3 on event, got %d", events.generations[0].OptionCount)
	}
}
