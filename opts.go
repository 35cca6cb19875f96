package linecalc

// Default limits. Both exist to bound work on adversarial input; ordinary
// expressions never come near them.
const (
	// DefaultMaxLen is the default maximum input length in bytes.
	DefaultMaxLen = 512
	// DefaultMaxDepth is the default maximum parenthesis nesting depth.
	// Evaluator recursion is bounded by nesting depth, so this cap bounds
	// stack use as well.
	DefaultMaxDepth = 64
)

// Option is an option for validation and evaluation.
type Option interface {
	option(config) config
}

// config holds the limits one validation or evaluation runs under.
type config struct {
	maxLen   int
	maxDepth int
}

func defaultConfig() config {
	return config{maxLen: DefaultMaxLen, maxDepth: DefaultMaxDepth}
}

func (c config) with(opts []Option) config {
	for _, o := range opts {
		if o != nil {
			c = o.option(c)
		}
	}
	return c
}

type (
	lenopt   int
	depthopt int
)

// MaxLen sets the maximum accepted input length in bytes. Longer input fails
// validation with a *LengthError.
func MaxLen(n int) Option {
	return lenopt(n)
}

func (o lenopt) option(c config) config {
	c.maxLen = int(o)
	return c
}

// MaxDepth sets the maximum parenthesis nesting depth. Deeper input fails
// validation with a *DepthError.
func MaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) option(c config) config {
	c.maxDepth = int(o)
	return c
}
