// Package workspace holds the user's working state: the current solution,
// solution history, favorites, saved formulas and recent topics.
//
// A Store owns one history.State and applies history actions to it under
// a mutex, so each dispatch is atomic and the last dispatch wins. Problem
// synthesis runs outside the lock; only the state transition is
// serialized.
//
//	store := workspace.NewStore(synth, workspace.WithRegistry(registry))
//	sol := store.Solve(ctx, "2 + 3 * 4", true)
//	full, err := store.Reveal(sol.ID)
package workspace
