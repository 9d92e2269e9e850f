// Package plan composes workout plans from the exercise library. The
// composer walks the requested muscle groups in order, resolves each to its
// library document, selects exercises against a plan-wide claimed set, and
// enriches the selection with generated coaching content under per-item
// failure isolation. Cancellation is the only failure that aborts a
// composition; everything else degrades to data on the plan.
package plan
