// Package dice implements the narrative dice engine: the fixed face tables
// of each die kind, random face draws, dice pools, and the reduction of
// rolled symbols to a net result.
//
// # Cancellation
//
// Rolled symbols are tallied first. Triumph also counts as a success and
// despair also counts as a failure. Each opposed pair (success/failure,
// advantage/threat, light side/dark side) then cancels one for one until at
// most one side remains. Pairs are independent of each other, so neither the
// order of the rolls nor the order of the pairs changes the result.
//
// # Randomness
//
// Draws read from a Source. Die.RollFace is the pure form of a draw and takes
// the face index directly, which is how tests and replays pin outcomes.
package dice
