// Package prefs holds the start-up preferences for the game. Preferences are
// stored in a TOML file. Any value missing from the file keeps its default
// value, and a missing file means that every value is the default.
//
// The default preferences reproduce the timing of the real board:
//
//	backend = "sim"
//
//	[timing]
//	point_wait = 1000
//	paddle_hold = 1000
//	serve_pause = 1000000
//	scale = 1
//	conversion_wait = "bittest"
//
//	[repeat]
//	ball = 100
//	paddle = 1
//	boundary = 10
//
//	[sim]
//	transfer_time = "8us"
//	conversion_time = "10us"
//	serve_hold = "500ms"
//
//	[scope]
//	size = 512
//	decay = "40ms"
//	audio = false
//	sample_rate = 48000
package prefs
