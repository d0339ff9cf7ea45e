package common

// Logical screen size. The window scales this up or down but simulation
// always runs in these units.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// GroundY is the y coordinate of the ground line. Everything below it is the
// ground band.
const GroundY = BaseHeight - 100

// Player tuning.
const (
	PlayerSize   = 40
	PlayerStartX = 100
	HitboxInset  = 2 // collision box is inset from the drawn square on every side
	Gravity      = 0.8
	JumpImpulse  = -15
	RotationStep = 0.15 // radians per tick while airborne
)

// Speed ramps from BaseSpeed toward MaxSpeed as distance accumulates:
// speed = min(BaseSpeed + distance/SpeedRampDistance, MaxSpeed).
const (
	BaseSpeed         = 5.0
	MaxSpeed          = 10.0
	SpeedRampDistance = 500.0
)

// ScoreDivisor converts distance to score: score = floor(distance/ScoreDivisor).
const ScoreDivisor = 10

// Obstacle generation tuning.
const (
	MinGap           = 300 // minimum horizontal spacing between consecutive spawns
	MaxGap           = 500
	FirstSpawnOffset = 200 // first obstacle spawns at BaseWidth + FirstSpawnOffset
	CullMargin       = 100 // removed once the right edge is this far past the left edge
	DrawMargin       = 200 // obstacles within this margin of the screen are drawn
	AirMinY          = 50  // floating obstacles pick a y in [AirMinY, AirMaxY]
	AirMaxY          = 200
)

// Cosmetic decay rates.
const (
	TrailCap        = 20
	TrailDecay      = 0.05
	ParticleDecay   = 0.02
	ParticleGravity = 0.1
	ParticleShrink  = 0.98
	ShakeDecay      = 0.9
)
