package practice

import (
	"context"

	"github.com/abhisek/polski/internal/provision"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/selector"
)

// SelectRequest chooses the selection policy. A Drill mode wins over
// CourseID; with neither the adaptive policy runs.
type SelectRequest struct {
	UserID   string
	CourseID string
	Drill    selector.DrillMode
	GroupIDs []string
	Max      int
}

// SelectConcepts picks the concepts of the next session.
func (e *Engine) SelectConcepts(ctx context.Context, req SelectRequest) selector.Selection {
	switch {
	case req.Drill != "":
		return e.selector.SelectDrill(ctx, selector.DrillRequest{
			Mode:     req.Drill,
			UserID:   req.UserID,
			CourseID: req.CourseID,
			GroupIDs: req.GroupIDs,
			Max:      req.Max,
		})
	case req.CourseID != "":
		return e.selector.SelectFromCourse(ctx, req.CourseID, req.Max)
	default:
		return e.selector.SelectPracticeConcepts(ctx, req.UserID, req.Max)
	}
}

// ProvisionQuestions returns questions for the given concepts.
func (e *Engine) ProvisionQuestions(ctx context.Context, req provision.Request) []questionbank.Entry {
	return e.provisioner.Provision(ctx, req)
}

// Session is a selection together with the questions provisioned for it.
type Session struct {
	Selection selector.Selection
	Mode      provision.Mode
	Questions []questionbank.Entry
}

// StartSession selects concepts and provisions questions for them in one
// step. Drills provision in DRILL mode, everything else in NORMAL mode.
func (e *Engine) StartSession(ctx context.Context, req SelectRequest, maxQuestions int) Session {
	sel := e.SelectConcepts(ctx, req)
	mode := provision.ModeNormal
	if req.Drill != "" {
		mode = provision.ModeDrill
	}
	if sel.Empty() {
		return Session{Selection: sel, Mode: mode, Questions: []questionbank.Entry{}}
	}
	qs := e.provisioner.Provision(ctx, provision.Request{
		UserID:       req.UserID,
		ConceptIDs:   sel.IDs(),
		Mode:         mode,
		MaxQuestions: maxQuestions,
	})
	return Session{Selection: sel, Mode: mode, Questions: qs}
}
