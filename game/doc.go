// Package game holds the state of the ball, the paddles and the scores, and
// the rules that advance that state from one frame to the next.
//
// The package has no knowledge of the display or of the paddle hardware. Every
// function takes a State and returns a new State, which means the rules can be
// exercised without any hardware present.
//
// The rules for a single frame are applied in a fixed order:
//
//	Advance -> ResolveWalls -> ResolvePaddles
//
// Wall resolution always happens first. A ball that reaches the roof or floor
// on the same frame as it reaches a paddle line is bounced off the wall and
// then judged against the paddle using the corrected position.
package game
