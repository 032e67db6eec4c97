package game

// Screen coordinates. The origin is the bottom left of the oscilloscope
// display
const (
	Left  = 0
	Right = 1023
	Floor = 0
	Roof  = 776
)

// The paddles sit on vertical lines. A ball at or beyond a line is either hit
// or missed
const (
	LeftLine  = 16
	RightLine = 1008
)

// A paddle covers HitRange units either side of its centre, exclusive
const HitRange = 70

// ReboundDivisor converts the distance between the ball and the centre of the
// paddle into vertical speed
const ReboundDivisor = 20

// Where and how the ball is served after a miss. The vertical position of the
// serve comes from Pseudorandom() with RandomModulus
const (
	ServeX        = 504
	RandomModulus = 768
)

// ServeVelocity is the velocity of the ball at the start of every rally
var ServeVelocity = Vector{X: 3, Y: 0}

// StartPosition is the position of the ball when the program starts
var StartPosition = Vector{X: 350, Y: 500}

// StartPaddle is the centre of both paddles before the first sample
const StartPaddle = Roof / 2
