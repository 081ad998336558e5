package twistycube

import "go.uber.org/zap"

// Option configures a Cube.
type Option func(*config)

type config struct {
	palette   Palette
	logger    *zap.Logger
	validator func(Twist) []Twist
	solver    Solver
	seed      uint64
	seeded    bool
}

func defaultConfig() *config {
	return &config{
		palette: DefaultPalette,
		logger:  zap.NewNop(),
	}
}

// WithPalette sets the sticker color of each face.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithLogger sets the logger used for twist and queue events.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithValidator installs a hook that expands every submitted twist into
// zero or more canonical twists before it is queued.
func WithValidator(fn func(Twist) []Twist) Option {
	return func(c *config) {
		c.validator = fn
	}
}

// WithSolver installs the hook used by Cube.Solve.
func WithSolver(s Solver) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithSeed makes Shuffle deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}
