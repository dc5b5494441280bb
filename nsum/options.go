// SPDX-License-Identifier: MIT

package nsum

import (
	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTermsPerDigit sets the term budget: maxTerms = DefaultTermsPerDigit × digits.
	DefaultTermsPerDigit = 10

	// DefaultBatchStart and DefaultBatchStep define the default batch schedule 10, 20, 30, …
	DefaultBatchStart = 10
	DefaultBatchStep  = 10

	// DefaultLimitStep is the constant batch size used by Limit.
	DefaultLimitStep = 10

	// DefaultSkip is the number of terms taken before any convergence test.
	DefaultSkip = 0

	// DefaultToleranceDivisor sets the default tolerance to eps/DefaultToleranceDivisor
	// at the caller's precision.
	DefaultToleranceDivisor = 1024

	// DefaultShanksSeed seeds the Shanks perturbations (0 selects the extrap default).
	DefaultShanksSeed = 0
)

// Precision guards.
const (
	// accelPrecisionFactor multiplies the working precision when extrapolating.
	accelPrecisionFactor = 4
	// directGuardDigits are added when only direct summation runs.
	directGuardDigits = 10
	// tailGuardDigits are added to the caller's precision for tail estimates.
	tailGuardDigits = 3
	// finiteGuardDigits are added while accumulating finite sums and products.
	finiteGuardDigits = 3
)

// panic messages (programmer errors only).
const (
	panicToleranceInvalid = "nsum: tolerance must be a non-negative number"
	panicMethodsEmpty     = "nsum: method set must not be empty"
	panicMethodsConflict  = "nsum: direct summation cannot be combined with other methods"
	panicMaxTermsInvalid  = "nsum: max terms must be at least 2"
	panicScheduleNil      = "nsum: schedule must not be nil"
	panicStepsInvalid     = "nsum: steps must be non-empty and positive"
	panicSkipNegative     = "nsum: skip must be non-negative"
	panicDirectionInvalid = "nsum: direction must be non-zero"
)

// Schedule returns the size of batch i (0-based).
type Schedule func(i int) int

// ArithmeticSchedule yields start, start+step, start+2·step, …
func ArithmeticSchedule(start, step int) Schedule {
	if start < 1 || step < 0 {
		panic(panicStepsInvalid)
	}

	return func(i int) int { return start + i*step }
}

// FixedSchedule yields the given sizes in order and then repeats the last one.
func FixedSchedule(steps ...int) Schedule {
	if len(steps) == 0 {
		panic(panicStepsInvalid)
	}
	for _, s := range steps {
		if s < 1 {
			panic(panicStepsInvalid)
		}
	}
	own := append([]int(nil), steps...)

	return func(i int) int {
		if i >= len(own) {
			return own[len(own)-1]
		}
		return own[i]
	}
}

// Option configures Adaptive, Sum, Product and Limit.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// With* constructors.
type Options struct {
	tol         *decimal.Big
	methods     Methods
	maxTerms    int
	schedule    Schedule
	skip        int
	logger      *zap.Logger
	direction   *decimal.Big
	expSampling bool
	shanksSeed  int64
}

// WithTolerance sets the absolute target error. Panics on nil or negative values.
func WithTolerance(tol *decimal.Big) Option {
	if tol == nil || tol.Sign() < 0 {
		panic(panicToleranceInvalid)
	}
	own := new(decimal.Big).Copy(tol)

	return func(o *Options) { o.tol = own }
}

// WithMethods selects the method set. Panics on an empty set or on Direct
// combined with an extrapolating method.
func WithMethods(m Methods) Option {
	if m == 0 {
		panic(panicMethodsEmpty)
	}
	if m.Has(Direct) && m.accelerates() {
		panic(panicMethodsConflict)
	}

	return func(o *Options) { o.methods = m }
}

// WithMaxTerms bounds the number of terms evaluated. Panics if n < 2.
func WithMaxTerms(n int) Option {
	if n < 2 {
		panic(panicMaxTermsInvalid)
	}

	return func(o *Options) { o.maxTerms = n }
}

// WithSchedule sets the batch schedule.
func WithSchedule(s Schedule) Option {
	if s == nil {
		panic(panicScheduleNil)
	}

	return func(o *Options) { o.schedule = s }
}

// WithSteps is WithSchedule(FixedSchedule(steps...)).
func WithSteps(steps ...int) Option {
	return WithSchedule(FixedSchedule(steps...))
}

// WithSkip suppresses convergence tests until at least n terms have been taken.
func WithSkip(n int) Option {
	if n < 0 {
		panic(panicSkipNegative)
	}

	return func(o *Options) { o.skip = n }
}

// WithLogger routes per-batch diagnostics to l at Debug level; nil disables them.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithVerbose logs diagnostics to stderr through a development logger.
func WithVerbose() Option {
	return WithLogger(zap.Must(zap.NewDevelopment()))
}

// WithDirection sets the side from which Limit approaches a finite point:
// samples are x + d/n. Panics on nil or zero.
func WithDirection(d *decimal.Big) Option {
	if d == nil || d.Sign() == 0 {
		panic(panicDirectionInvalid)
	}
	own := new(decimal.Big).Copy(d)

	return func(o *Options) { o.direction = own }
}

// WithExponentialSampling makes Limit sample n = 2, 4, 8, … instead of 1, 2, 3, …
func WithExponentialSampling() Option {
	return func(o *Options) { o.expSampling = true }
}

// WithShanksSeed sets the seed of the randomized Shanks perturbations.
func WithShanksSeed(seed int64) Option {
	return func(o *Options) { o.shanksSeed = seed }
}

// gatherOptions applies opts over the defaults. The tolerance and the term
// budget depend on the precision in ctx at the time of the call.
func gatherOptions(ctx *numeric.Context, opts ...Option) Options {
	o := Options{
		methods:    DefaultMethods,
		schedule:   ArithmeticSchedule(DefaultBatchStart, DefaultBatchStep),
		skip:       DefaultSkip,
		logger:     zap.NewNop(),
		direction:  decimal.New(1, 0),
		shanksSeed: DefaultShanksSeed,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tol == nil {
		o.tol = ctx.New().Quo(ctx.Eps(), decimal.New(DefaultToleranceDivisor, 0))
	}
	if o.maxTerms == 0 {
		o.maxTerms = DefaultTermsPerDigit * ctx.Digits()
	}

	return o
}
