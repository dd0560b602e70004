package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/polski/ent"
	"github.com/abhisek/polski/ent/predicate"
	"github.com/abhisek/polski/ent/questionbankentry"
	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/questionbank"
)

// QuestionRepo implements questionbank.Repo.
type QuestionRepo struct {
	client *ent.Client
}

var _ questionbank.Repo = (*QuestionRepo)(nil)

func (r *QuestionRepo) Find(ctx context.Context, f questionbank.Filter, order questionbank.Order, limit int) ([]questionbank.Entry, error) {
	q := r.client.QuestionBankEntry.Query().
		Where(questionPredicates(f)...)

	switch order {
	case questionbank.OrderQuality:
		q = q.Order(bySourceRank, ent.Asc(questionbankentry.FieldTimesUsed), ent.Desc(questionbankentry.FieldSuccessRate))
	case questionbank.OrderRecentlyUsed:
		// NULL last_used sorts last in descending order.
		q = q.Order(ent.Desc(questionbankentry.FieldLastUsed))
	default:
		q = q.Order(ent.Desc(questionbankentry.FieldCreatedAt))
	}
	q = q.Order(ent.Asc(questionbankentry.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	out := make([]questionbank.Entry, len(rows))
	for i, e := range rows {
		out[i] = toEntry(e)
	}
	return out, nil
}

func (r *QuestionRepo) FindByID(ctx context.Context, id string) (*questionbank.Entry, error) {
	e, err := r.client.QuestionBankEntry.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	out := toEntry(e)
	return &out, nil
}

func (r *QuestionRepo) Create(ctx context.Context, e questionbank.Entry) (questionbank.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := r.client.QuestionBankEntry.Create().
		SetID(e.ID).
		SetQuestion(e.Question).
		SetCorrectAnswer(e.CorrectAnswer).
		SetType(string(e.Type)).
		SetTargetConcepts(e.TargetConcepts).
		SetDifficulty(string(e.Difficulty)).
		SetTimesUsed(e.TimesUsed).
		SetSuccessRate(e.SuccessRate).
		SetNillableLastUsed(e.LastUsed).
		SetCreatedAt(e.CreatedAt).
		SetActive(e.Active).
		SetSource(string(e.Source)).
		SetOptions(e.Options).
		SetMedia(e.Media).
		Save(ctx)
	if err != nil {
		return questionbank.Entry{}, fmt.Errorf("create question: %w", err)
	}
	return e, nil
}

func (r *QuestionRepo) UpdateOne(ctx context.Context, id string, p questionbank.Patch) error {
	upd := r.client.QuestionBankEntry.UpdateOneID(id)
	if p.TimesUsed != nil {
		upd = upd.SetTimesUsed(*p.TimesUsed)
	}
	if p.SuccessRate != nil {
		upd = upd.SetSuccessRate(*p.SuccessRate)
	}
	if p.LastUsed != nil {
		upd = upd.SetLastUsed(*p.LastUsed)
	}
	if p.Active != nil {
		upd = upd.SetActive(*p.Active)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return questionbank.ErrNotFound
		}
		return fmt.Errorf("update question %s: %w", id, err)
	}
	return nil
}

func (r *QuestionRepo) Count(ctx context.Context, f questionbank.Filter) (int, error) {
	n, err := r.client.QuestionBankEntry.Query().
		Where(questionPredicates(f)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func questionPredicates(f questionbank.Filter) []predicate.QuestionBankEntry {
	var preds []predicate.QuestionBankEntry
	if len(f.IDs) > 0 {
		preds = append(preds, questionbankentry.IDIn(f.IDs...))
	}
	if len(f.ConceptsAny) > 0 {
		preds = append(preds, jsonContainsAny[predicate.QuestionBankEntry](questionbankentry.FieldTargetConcepts, f.ConceptsAny))
	}
	if len(f.Sources) > 0 {
		sources := make([]string, len(f.Sources))
		for i, s := range f.Sources {
			sources[i] = string(s)
		}
		preds = append(preds, questionbankentry.SourceIn(sources...))
	}
	if f.ActiveOnly {
		preds = append(preds, questionbankentry.Active(true))
	}
	if f.UsedOnly {
		preds = append(preds, questionbankentry.TimesUsedGT(0))
	}
	return preds
}

// bySourceRank orders manual before generated before momentary.
func bySourceRank(s *sql.Selector) {
	s.OrderExpr(sql.Expr(fmt.Sprintf(
		"CASE %s WHEN '%s' THEN 0 WHEN '%s' THEN 1 WHEN '%s' THEN 2 ELSE 3 END",
		s.C(questionbankentry.FieldSource),
		questionbank.SourceManual, questionbank.SourceGenerated, questionbank.SourceMomentary,
	)))
}

func toEntry(e *ent.QuestionBankEntry) questionbank.Entry {
	return questionbank.Entry{
		ID:             e.ID,
		Question:       e.Question,
		CorrectAnswer:  e.CorrectAnswer,
		Type:           questionbank.QuestionType(e.Type),
		TargetConcepts: e.TargetConcepts,
		Difficulty:     catalog.Level(e.Difficulty),
		TimesUsed:      e.TimesUsed,
		SuccessRate:    e.SuccessRate,
		LastUsed:       e.LastUsed,
		CreatedAt:      e.CreatedAt,
		Active:         e.Active,
		Source:         questionbank.Source(e.Source),
		Options:        e.Options,
		Media:          e.Media,
	}
}
