package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/history"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
)

var (
	ErrSolutionNotFound = errors.New("solution not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrEmptyTopic       = errors.New("topic is empty")
)

// Store serializes history actions over one workspace state
type Store struct {
	mu    sync.Mutex
	state history.State

	synth    *solver.Synthesizer
	registry *formulas.Registry
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the store logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics publishes workspace sizes and solution counts
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(s *Store) { s.metrics = metrics }
}

// WithRegistry lets favorites reference catalog formulas by id
func WithRegistry(registry *formulas.Registry) Option {
	return func(s *Store) { s.registry = registry }
}

// NewStore creates an empty workspace
func NewStore(synth *solver.Synthesizer, opts ...Option) *Store {
	s := &Store{
		state:  history.Initial(),
		synth:  synth,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies actions in order as one atomic update and returns the
// resulting state
func (s *Store) Dispatch(actions ...history.Action) history.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(actions...)
}

func (s *Store) dispatchLocked(actions ...history.Action) history.State {
	for _, a := range actions {
		s.state = history.Reduce(s.state, a)
	}
	if s.metrics != nil {
		s.metrics.SetWorkspaceSize(len(s.state.History), len(s.state.Favorites), len(s.state.SavedFormulas))
	}
	return s.state
}

// Solve classifies and synthesizes problem, makes it the current solution
// and prepends it to history
func (s *Store) Solve(ctx context.Context, problem string, showHint bool) solver.Solution {
	sol := s.synth.Solve(ctx, problem, showHint)
	return s.record(sol)
}

// SolveAs synthesizes problem under a caller-chosen category
func (s *Store) SolveAs(ctx context.Context, problem string, category solver.Category, showHint bool) solver.Solution {
	sol := s.synth.Synthesize(ctx, problem, category, showHint)
	return s.record(sol)
}

func (s *Store) record(sol solver.Solution) solver.Solution {
	s.Dispatch(history.SetCurrent{Solution: sol}, history.AddSolution{Solution: sol})

	if s.metrics != nil {
		s.metrics.RecordSolution(string(sol.Category), sol.IsHint)
	}
	s.logger.Info("Solution recorded",
		zap.String("solution_id", sol.ID.String()),
		zap.String("category", string(sol.Category)),
		zap.Bool("hint", sol.IsHint),
		zap.Bool("answered", sol.Answer != nil),
	)
	return sol
}

// Reveal replaces the current solution with the full-step version of
// solutionID. History entries keep their hint form.
func (s *Store) Reveal(solutionID id.SolutionID) (solver.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sol, ok := history.Find(s.state, solutionID)
	if !ok {
		return solver.Solution{}, fmt.Errorf("%w: %s", ErrSolutionNotFound, solutionID)
	}
	revealed := sol.Reveal()
	s.dispatchLocked(history.SetCurrent{Solution: revealed})

	s.logger.Debug("Solution revealed", zap.String("solution_id", solutionID.String()))
	return revealed, nil
}

// SaveFormula creates a custom formula and appends it to the saved list.
// Duplicate names are allowed.
func (s *Store) SaveFormula(name, template, description string) (formulas.Formula, error) {
	f, err := formulas.NewCustomFormula(name, template, description)
	if err != nil {
		return formulas.Formula{}, err
	}
	s.Dispatch(history.SaveFormula{Formula: f})

	s.logger.Info("Formula saved",
		zap.String("formula_id", f.ID),
		zap.String("name", f.Name),
		zap.Strings("variables", f.Variables),
	)
	return f, nil
}

// AddFavorite marks f as a favorite under a fresh favorite id
func (s *Store) AddFavorite(f formulas.Formula) formulas.Favorite {
	fav := formulas.NewFavorite(f)
	s.Dispatch(history.AddFavoriteFormula{Favorite: fav})

	s.logger.Debug("Favorite added",
		zap.String("favorite_id", fav.ID.String()),
		zap.String("formula", f.Name),
	)
	return fav
}

// AddFavoriteByID favorites a catalog or saved formula by its id
func (s *Store) AddFavoriteByID(formulaID string) (formulas.Favorite, error) {
	f, err := s.lookupFormula(formulaID)
	if err != nil {
		return formulas.Favorite{}, err
	}
	return s.AddFavorite(f), nil
}

func (s *Store) lookupFormula(formulaID string) (formulas.Formula, error) {
	if s.registry != nil {
		if f, err := s.registry.ByID(formulaID); err == nil {
			return f, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.state.SavedFormulas {
		if f.ID == formulaID {
			return f, nil
		}
	}
	return formulas.Formula{}, fmt.Errorf("%w: %s", formulas.ErrNotFound, formulaID)
}

// RemoveFavorite drops the favorite with favoriteID
func (s *Store) RemoveFavorite(favoriteID id.FavoriteID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.state.Favorites)
	after := s.dispatchLocked(history.RemoveFavoriteFormula{ID: favoriteID})
	if len(after.Favorites) == before {
		return fmt.Errorf("%w: %s", ErrFavoriteNotFound, favoriteID)
	}

	s.logger.Debug("Favorite removed", zap.String("favorite_id", favoriteID.String()))
	return nil
}

// AddRecentTopic moves topic to the front of the recent topics
func (s *Store) AddRecentTopic(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}
	s.Dispatch(history.AddRecentTopic{Topic: topic})
	return nil
}

// Snapshot returns the current state. Callers may keep it; later
// dispatches do not change it.
func (s *Store) Snapshot() history.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	if out.Current != nil {
		current := *out.Current
		out.Current = &current
	}
	return out
}
