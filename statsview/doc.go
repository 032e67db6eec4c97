// Package statsview is an optional package that is only built when the
// statsview build constraint is present. It provides a HTTP server running
// locally offering runtime statistics, which is useful when tuning the busy
// loops of the simulated board.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
