// Package history holds the workspace state and its reducer.
//
// Reduce is a pure function from (State, Action) to State. It never
// modifies the slices of the state it receives, so earlier states stay
// valid after later dispatches.
//
// Actions:
//   - SetCurrent: replace the active solution
//   - AddSolution: prepend to history, keep the newest 50
//   - AddFavoriteFormula / RemoveFavoriteFormula: favorites by id
//   - AddRecentTopic: move to front, de-duplicate, keep 10
//   - SaveFormula: append a user formula
package history
