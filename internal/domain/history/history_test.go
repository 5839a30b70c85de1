package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
)

func solution(n int) solver.Solution {
	return solver.Solution{
		ID:      id.SolutionID(fmt.Sprintf("sol_%02d", n)),
		Problem: fmt.Sprintf("%d + 1", n),
	}
}

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestAddSolutionBound(t *testing.T) {
	state := Initial()
	for i := 1; i <= HistoryCapacity+1; i++ {
		state = Reduce(state, AddSolution{Solution: solution(i)})
	}

	require.Len(t, state.History, HistoryCapacity)
	assert.Equal(t, id.SolutionID("sol_51"), state.History[0].ID)
	assert.Equal(t, id.SolutionID("sol_02"), state.History[HistoryCapacity-1].ID)
	for i := 1; i < len(state.History); i++ {
		assert.Greater(t, state.History[i-1].ID, state.History[i].ID)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Reduce(Initial(), AddSolution{Solution: solution(1)})
	before = Reduce(before, AddRecentTopic{Topic: "algebra"})

	after := Reduce(before, AddSolution{Solution: solution(2)})
	after = Reduce(after, AddRecentTopic{Topic: "geometry"})

	assert.Len(t, before.History, 1)
	assert.Equal(t, []string{"algebra"}, before.RecentTopics)
	assert.Len(t, after.History, 2)
}

func TestSetCurrent(t *testing.T) {
	state := Reduce(Initial(), SetCurrent{Solution: solution(7)})
	require.NotNil(t, state.Current)
	assert.Equal(t, id.SolutionID("sol_07"), state.Current.ID)
	assert.Empty(t, state.History, "set current leaves history alone")
}

func TestFavorites(t *testing.T) {
	f, err := formulas.NewCustomFormula("Area", "l * w", "")
	require.NoError(t, err)
	a := formulas.NewFavorite(f)
	b := formulas.NewFavorite(f)

	state := Reduce(Initial(), AddFavoriteFormula{Favorite: a})
	state = Reduce(state, AddFavoriteFormula{Favorite: b})
	state = Reduce(state, SaveFormula{Formula: f})
	require.Len(t, state.Favorites, 2)

	removed := Reduce(state, RemoveFavoriteFormula{ID: a.ID})
	require.Len(t, removed.Favorites, 1)
	assert.Equal(t, b.ID, removed.Favorites[0].ID)
	assert.Len(t, removed.SavedFormulas, 1, "saved formulas are unaffected")
	assert.Len(t, state.Favorites, 2)

	same := Reduce(removed, RemoveFavoriteFormula{ID: "fav_missing"})
	assert.Len(t, same.Favorites, 1)
}

func TestSaveFormulaKeepsDuplicates(t *testing.T) {
	f, err := formulas.NewCustomFormula("Area", "l * w", "")
	require.NoError(t, err)

	state := Reduce(Initial(), SaveFormula{Formula: f})
	state = Reduce(state, SaveFormula{Formula: f})
	assert.Len(t, state.SavedFormulas, 2)
}

func TestAddRecentTopic(t *testing.T) {
	state := Initial()
	for _, topic := range []string{"a", "b", "c", "a"} {
		state = Reduce(state, AddRecentTopic{Topic: topic})
	}
	assert.Equal(t, []string{"a", "c", "b"}, state.RecentTopics)

	for i := 0; i < 20; i++ {
		state = Reduce(state, AddRecentTopic{Topic: fmt.Sprintf("t%d", i)})
	}
	assert.Len(t, state.RecentTopics, RecentTopicsCapacity)
	assert.Equal(t, "t19", state.RecentTopics[0])
}

func TestUnknownActionIsNoop(t *testing.T) {
	state := Reduce(Initial(), AddSolution{Solution: solution(1)})
	assert.Equal(t, state, Reduce(state, unknownAction{}))
	assert.Equal(t, state, Reduce(state, nil))
}

func TestFind(t *testing.T) {
	state := Reduce(Initial(), AddSolution{Solution: solution(1)})
	state = Reduce(state, AddSolution{Solution: solution(2)})

	revealed := solution(2)
	revealed.Steps = []string{"full"}
	state = Reduce(state, SetCurrent{Solution: revealed})

	got, ok := Find(state, "sol_02")
	require.True(t, ok)
	assert.Equal(t, []string{"full"}, got.Steps)

	got, ok = Find(state, "sol_01")
	require.True(t, ok)
	assert.Equal(t, "1 + 1", got.Problem)

	_, ok = Find(state, "sol_99")
	assert.False(t, ok)
}
