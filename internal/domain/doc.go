// Package domain contains the core scoring and validation engine for bowltrack.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (storage, terminal, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Frame]: the throws of one frame, one of three shapes (empty, two-throw, three-throw)
//   - [Game]: ten frames plus a 1-based game number; owns scoring and lookahead
//   - [Session]: the games bowled on one [Date]; owns roll-up statistics
//
// # Validity and scoring
//
// Validity and scoring are kept apart. Score methods always return a number,
// but the number is only meaningful when the matching validity predicate
// holds. The one exception is [Game.ScoreThrough], which reports ok=false
// instead of guessing whenever the frames its lookahead needs are not yet
// legally recorded.
//
// Domain values are:
//   - Immutable after construction (edits replace whole Frame or Game values)
//   - Free of infrastructure dependencies and of wall-clock reads
//   - Testable without mocks or external systems
package domain
