package store

import (
	"context"
	"fmt"

	"github.com/abhisek/polski/ent"
	"github.com/abhisek/polski/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetMode(data.Mode).
		SetCorrect(data.Correct).
		SetResponseTimeMs(data.ResponseTimeMs)
	if len(data.ConceptIDs) > 0 {
		builder = builder.SetConcepts(data.ConceptIDs)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEventRecord, error) {
	q := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID))
	if opts.After > 0 {
		q = q.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(answerevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(answerevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	out := make([]AnswerEventRecord, len(rows))
	for i, e := range rows {
		out[i] = AnswerEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				UserID:         e.UserID,
				QuestionID:     e.QuestionID,
				ConceptIDs:     e.Concepts,
				Mode:           e.Mode,
				Correct:        e.Correct,
				ResponseTimeMs: e.ResponseTimeMs,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) AnswerTally(ctx context.Context, userID string) (AnswerTally, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		Count(ctx)
	if err != nil {
		return AnswerTally{}, fmt.Errorf("count answers: %w", err)
	}
	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID), answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return AnswerTally{}, fmt.Errorf("count correct answers: %w", err)
	}
	return AnswerTally{Total: total, Correct: correct}, nil
}
