package history

import (
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
)

const (
	// HistoryCapacity bounds the solution log
	HistoryCapacity = 50
	// RecentTopicsCapacity bounds the recent topic list
	RecentTopicsCapacity = 10
)

// State is the session's math workspace. History is most-recent-first.
type State struct {
	Current       *solver.Solution    `json:"current,omitempty"`
	History       []solver.Solution   `json:"history"`
	Favorites     []formulas.Favorite `json:"favorites"`
	RecentTopics  []string            `json:"recent_topics"`
	SavedFormulas []formulas.Formula  `json:"saved_formulas"`
}

// Initial returns the empty state
func Initial() State {
	return State{
		History:       []solver.Solution{},
		Favorites:     []formulas.Favorite{},
		RecentTopics:  []string{},
		SavedFormulas: []formulas.Formula{},
	}
}

// Action is a state transition
type Action interface {
	isAction()
}

// SetCurrent replaces the active solution
type SetCurrent struct{ Solution solver.Solution }

// AddSolution prepends a solution to the history
type AddSolution struct{ Solution solver.Solution }

// AddFavoriteFormula appends a favorite
type AddFavoriteFormula struct{ Favorite formulas.Favorite }

// RemoveFavoriteFormula drops the favorite with ID
type RemoveFavoriteFormula struct{ ID id.FavoriteID }

// AddRecentTopic moves Topic to the front of the recent list
type AddRecentTopic struct{ Topic string }

// SaveFormula appends a user formula. Duplicates are kept.
type SaveFormula struct{ Formula formulas.Formula }

func (SetCurrent) isAction()            {}
func (AddSolution) isAction()           {}
func (AddFavoriteFormula) isAction()    {}
func (RemoveFavoriteFormula) isAction() {}
func (AddRecentTopic) isAction()        {}
func (SaveFormula) isAction()           {}

// Reduce applies action to state and returns the new state. The input is
// never modified. Unknown actions return state unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetCurrent:
		sol := a.Solution
		state.Current = &sol

	case AddSolution:
		next := make([]solver.Solution, 0, min(len(state.History)+1, HistoryCapacity))
		next = append(next, a.Solution)
		for _, s := range state.History {
			if len(next) == HistoryCapacity {
				break
			}
			next = append(next, s)
		}
		state.History = next

	case AddFavoriteFormula:
		next := make([]formulas.Favorite, 0, len(state.Favorites)+1)
		next = append(next, state.Favorites...)
		state.Favorites = append(next, a.Favorite)

	case RemoveFavoriteFormula:
		next := make([]formulas.Favorite, 0, len(state.Favorites))
		for _, f := range state.Favorites {
			if f.ID != a.ID {
				next = append(next, f)
			}
		}
		state.Favorites = next

	case AddRecentTopic:
		next := make([]string, 0, RecentTopicsCapacity)
		next = append(next, a.Topic)
		for _, t := range state.RecentTopics {
			if len(next) == RecentTopicsCapacity {
				break
			}
			if t != a.Topic {
				next = append(next, t)
			}
		}
		state.RecentTopics = next

	case SaveFormula:
		next := make([]formulas.Formula, 0, len(state.SavedFormulas)+1)
		next = append(next, state.SavedFormulas...)
		state.SavedFormulas = append(next, a.Formula)
	}
	return state
}

// Find returns the solution with solutionID from Current or History
func Find(state State, solutionID id.SolutionID) (solver.Solution, bool) {
	if state.Current != nil && state.Current.ID == solutionID {
		return *state.Current, true
	}
	for _, s := range state.History {
		if s.ID == solutionID {
			return s, true
		}
	}
	return solver.Solution{}, false
}
