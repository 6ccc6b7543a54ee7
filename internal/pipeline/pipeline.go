// Package pipeline orchestrates a generation run: detect option counts,
// generate validated variants, and write the output document.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/document"
	"github.com/abhisek/quizforge/internal/input"
	"github.com/abhisek/quizforge/internal/questiongen"
	"github.com/abhisek/quizforge/internal/store"
)

// DocumentWriter writes questions to a document file.
type DocumentWriter interface {
	Write(ctx context.Context, path string, questions []*questiongen.Question) (*document.WriteResult, error)
}

// Service runs the full generation pipeline.
type Service struct {
	generator questiongen.Generator
	writer    DocumentWriter
	events    store.EventRepo
	progress  io.Writer
}

// NewService wires a pipeline from its parts. progress receives per-question
// status lines; pass io.Discard to silence it.
func NewService(generator questiongen.Generator, writer DocumentWriter, events store.EventRepo, progress io.Writer) *Service {
	return &Service{
		generator: generator,
		writer:    writer,
		events:    events,
		progress:  progress,
	}
}

// Result summarizes one pipeline run.
type Result struct {
	RunID     string
	Generated int
	Failed    int
	Document  *document.WriteResult
}

// Run generates count variants per base question and writes them all to a
// single document at outPath. Individual generation failures are recorded
// and skipped; the run fails only when no question at all was generated.
func (s *Service) Run(ctx context.Context, bases []*input.BaseQuestion, count int, outPath string) (*Result, error) {
	if len(bases) == 0 {
		return nil, errors.New("no base questions")
	}
	if count < 1 {
		count = 1
	}

	runID := uuid.NewString()
	result := &Result{RunID: runID}

	var questions []*questiongen.Question
	order := 1
	for _, base := range bases {
		optionCount := questiongen.DetectOptionCount(base.Text)

		for i := 0; i < count; i++ {
			genInput := questiongen.GenerateInput{
				Base:        base.Text,
				OptionCount: optionCount,
				Order:       order,
			}

			q, err := s.generator.Generate(ctx, genInput)
			s.recordGeneration(ctx, runID, genInput, err)

			if err != nil {
				result.Failed++
				fmt.Fprintf(s.progress, "question %d: failed: %v\n", order, err)
				order++
				continue
			}

			questions = append(questions, q)
			result.Generated++
			fmt.Fprintf(s.progress, "question %d: ok (%s)\n", order, q.Difficulty)
			order++
		}
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("all %d generation attempts failed", result.Failed)
	}

	doc, err := s.writer.Write(ctx, outPath, questions)
	if err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	result.Document = doc

	if s.events != nil {
		if err := s.events.AppendDocument(ctx, store.DocumentEventData{
			RunID:         runID,
			Path:          doc.Path,
			QuestionCount: doc.QuestionCount,
			ImageCount:    doc.ImageCount,
		}); err != nil {
			fmt.Fprintf(s.progress, "warning: recording document event: %v\n", err)
		}
	}

	return result, nil
}

func (s *Service) recordGeneration(ctx context.Context, runID string, in questiongen.GenerateInput, genErr error) {
	if s.events == nil {
		return
	}

	data := store.GenerationEventData{
		RunID:       runID,
		Order:       in.Order,
		OptionCount: in.OptionCount,
		Valid:       genErr == nil,
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
		var vErr *questiongen.ValidationError
		if errors.As(genErr, &vErr) {
			data.Validator = vErr.Validator
		}
	}

	if err := s.events.AppendGeneration(ctx, data); err != nil {
		fmt.Fprintf(s.progress, "warning: recording generation event: %v\n", err)
	}
}
