package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO generation_events
			(sequence, timestamp, run_id, question_order, option_count,
			 valid, validator, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().Unix(), data.RunID, data.Order, data.OptionCount,
		boolToInt(data.Valid), data.Validator, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendDocument(ctx context.Context, data DocumentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO document_events
			(sequence, timestamp, run_id, path, question_count, image_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().Unix(), data.RunID, data.Path,
		data.QuestionCount, data.ImageCount,
	)
	if err != nil {
		return fmt.Errorf("save document event: %w", err)
	}

	return nil
}
