// Package practice is the caller-facing entry point of the learning
// engine. It wires the scheduler, selector, provisioner and performance
// updater over one set of repositories.
package practice

import (
	"context"
	"time"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/provision"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/questiongen"
	"github.com/abhisek/polski/internal/selector"
	"github.com/abhisek/polski/internal/srs"
	"github.com/abhisek/polski/internal/store"
)

// AnswerLog receives one event per recorded answer. store.EventRepo
// satisfies it.
type AnswerLog interface {
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
	AnswerTally(ctx context.Context, userID string) (store.AnswerTally, error)
}

// Repos are the persistence dependencies of the engine. Groups, Courses
// and Events may be nil.
type Repos struct {
	Concepts  catalog.ConceptRepo
	Groups    catalog.GroupRepo
	Courses   catalog.CourseRepo
	Progress  srs.ProgressRepo
	Questions questionbank.Repo
	Events    AnswerLog
}

// Config groups the tunables of every engine component.
type Config struct {
	SRS       srs.Params       `yaml:"srs"`
	Selector  selector.Config  `yaml:"selector"`
	Provision provision.Config `yaml:"provision"`
}

// DefaultConfig returns the standard engine settings.
func DefaultConfig() Config {
	return Config{
		SRS:       srs.DefaultParams(),
		Selector:  selector.DefaultConfig(),
		Provision: provision.DefaultConfig(),
	}
}

// Engine is the learning engine facade.
type Engine struct {
	repos       Repos
	scheduler   *srs.Scheduler
	selector    *selector.Selector
	provisioner *provision.Provisioner
	updater     *questionbank.Updater
	log         *logger.Logger

	now func() time.Time
}

// New wires an Engine. generator may be nil, in which case provisioning
// only serves stored questions.
func New(repos Repos, generator questiongen.Generator, cfg Config, log *logger.Logger) *Engine {
	log = logger.OrNop(log)
	sched := srs.NewScheduler(repos.Progress, log).WithParams(cfg.SRS)
	return &Engine{
		repos:       repos,
		scheduler:   sched,
		selector:    selector.New(repos.Concepts, repos.Groups, repos.Courses, sched, cfg.Selector, log),
		provisioner: provision.New(repos.Questions, repos.Concepts, sched, generator, cfg.Provision, log),
		updater:     questionbank.NewUpdater(repos.Questions, log),
		log:         log.With("component", "practice"),
		now:         time.Now,
	}
}

// SetClock replaces the clock of the engine and every component it owns.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
	e.scheduler.Now = now
	e.selector.Now = now
	e.provisioner.Now = now
	e.updater.Now = now
}

// Scheduler exposes the SRS scheduler for read-only queries.
func (e *Engine) Scheduler() *srs.Scheduler {
	return e.scheduler
}
