// Package verify cross-checks the reciprocal dividers and the division
// engines against plain Go and math/big division.
//
// 8-bit words are checked exhaustively. Wider words are fuzzed from a seeded
// source, one goroutine and one source per width, so a run is reproducible
// from its Config.
package verify

import (
	"context"
	"math/big"
	"math/rand"
	"sync"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/ultimath/arbitrary"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/systems"
	"github.com/calebcase/ultimath/word"
)

// Error is the error class for verification runs.
var Error = errs.Class("verify")

// Widths are the word widths a run may select.
var Widths = []uint{8, 16, 32, 64}

// Config configures a run.
type Config struct {
	Seed       int64
	Iterations int
	Widths     []uint
}

// Report counts the checks of a run.
type Report struct {
	Checked  uint64
	Failures uint64
}

// Add accumulates o into r.
func (r *Report) Add(o Report) {
	r.Checked += o.Checked
	r.Failures += o.Failures
}

// OK returns true when no check failed.
func (r Report) OK() bool {
	return r.Failures == 0
}

func (c Config) validate() error {
	if c.Iterations < 0 {
		return Error.New("invalid iterations: %d", c.Iterations)
	}

	for _, w := range c.Widths {
		switch w {
		case 8, 16, 32, 64:
		default:
			return Error.New("invalid width: %d", w)
		}
	}

	return nil
}

// source returns the random source for the run at width.
func (c Config) source(width uint) *rand.Rand {
	return rand.New(rand.NewSource(c.Seed ^ int64(width)<<32))
}

// every checks ctx periodically.
const every = 1 << 12

type task func(ctx context.Context, logger *zap.Logger, rng *rand.Rand, iterations int) (Report, error)

// run executes one task per width concurrently and merges the reports.
func run(ctx context.Context, logger *zap.Logger, c Config, tasks map[uint]task) (report Report, err error) {
	err = c.validate()
	if err != nil {
		return report, err
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errg errs.Group
	)

	for _, width := range c.Widths {
		width := width
		t := tasks[width]

		wg.Add(1)
		go func() {
			defer wg.Done()

			log := logger.With(zap.Uint("width", width))
			log.Debug("started")

			r, err := t(ctx, log, c.source(width), c.Iterations)

			log.Info("finished",
				zap.Uint64("checked", r.Checked),
				zap.Uint64("failures", r.Failures),
			)

			mu.Lock()
			defer mu.Unlock()

			report.Add(r)
			errg.Add(err)
		}()
	}

	wg.Wait()

	return report, Error.Wrap(errg.Err())
}

// Dividers checks word.Divider and word.Divider21 against plain division.
func Dividers(ctx context.Context, logger *zap.Logger, c Config) (Report, error) {
	return run(ctx, logger, c, map[uint]task{
		8:  dividers8,
		16: fuzzDividers[uint16],
		32: fuzzDividers[uint32],
		64: fuzzDividers[uint64],
	})
}

func dividers8(ctx context.Context, logger *zap.Logger, _ *rand.Rand, _ int) (r Report, err error) {
	for d := 1; d < 256; d++ {
		if err = ctx.Err(); err != nil {
			return r, err
		}

		divider := guarantee.Must(word.NewDivider(uint8(d)))
		divider21 := guarantee.Must(word.NewDivider21(uint8(d)))

		for x := 0; x < 256; x++ {
			got := divider.Division(uint8(x))
			r.Checked++
			if got.Quotient != uint8(x/d) || got.Remainder != uint8(x%d) {
				r.Failures++
				logger.Error("divider mismatch",
					zap.Int("dividend", x),
					zap.Int("divisor", d),
					zap.Uint8("quotient", got.Quotient),
				)
			}

			// Every dividend High:x with High < d.
			for high := 0; high < d; high++ {
				n := high<<8 | x

				q, rem := divider21.Div21(word.Doublet[uint8]{Low: uint8(x), High: uint8(high)})
				r.Checked++
				if q != uint8(n/d) || rem != uint8(n%d) {
					r.Failures++
					logger.Error("divider21 mismatch",
						zap.Int("dividend", n),
						zap.Int("divisor", d),
						zap.Uint8("quotient", q),
						zap.Uint8("remainder", rem),
					)
				}
			}
		}
	}

	return r, nil
}

func randomWord[W word.Word](rng *rand.Rand) W {
	w := W(rng.Uint64())

	// Uniform words are almost always large. Shift some down.
	if rng.Intn(4) == 0 {
		w >>= uint(rng.Intn(int(word.Size[W]())))
	}

	return w
}

func fuzzDividers[W word.Word](ctx context.Context, logger *zap.Logger, rng *rand.Rand, iterations int) (r Report, err error) {
	for i := 0; i < iterations; i++ {
		if i%every == 0 {
			if err = ctx.Err(); err != nil {
				return r, err
			}
		}

		d := randomWord[W](rng)
		if d == 0 {
			d = 1
		}
		x := randomWord[W](rng)

		divider := guarantee.Must(word.NewDivider(d))
		got := divider.Division(x)

		r.Checked++
		if got.Quotient != x/d || got.Remainder != x%d {
			r.Failures++
			logger.Error("divider mismatch",
				zap.Uint64("dividend", uint64(x)),
				zap.Uint64("divisor", uint64(d)),
				zap.Uint64("quotient", uint64(got.Quotient)),
			)
		}

		n := word.Doublet[W]{Low: x, High: randomWord[W](rng) % d}
		divider21 := guarantee.Must(word.NewDivider21(d))

		q, rem := divider21.Div21(n)
		eq, er := word.Div21(n, d)

		r.Checked++
		if q != eq || rem != er {
			r.Failures++
			logger.Error("divider21 mismatch",
				zap.Uint64("high", uint64(n.High)),
				zap.Uint64("low", uint64(n.Low)),
				zap.Uint64("divisor", uint64(d)),
				zap.Uint64("quotient", uint64(q)),
				zap.Uint64("remainder", uint64(rem)),
			)
		}
	}

	return r, nil
}

// Divisions checks systems division exhaustively for 8-bit integers and
// arbitrary long division against math/big for every width.
func Divisions(ctx context.Context, logger *zap.Logger, c Config) (Report, error) {
	return run(ctx, logger, c, map[uint]task{
		8:  divisions8,
		16: longDivisions[uint16],
		32: longDivisions[uint32],
		64: longDivisions[uint64],
	})
}

func divisions8(ctx context.Context, logger *zap.Logger, rng *rand.Rand, iterations int) (r Report, err error) {
	for a := -128; a < 128; a++ {
		if err = ctx.Err(); err != nil {
			return r, err
		}

		for d := -128; d < 128; d++ {
			if d == 0 {
				continue
			}

			f := systems.Division(int8(a), guarantee.Must(guarantee.NonzeroOf(int8(d))))

			overflow := a == -128 && d == -1
			want := word.Division[int8, int8]{Quotient: int8(a / d), Remainder: int8(a % d)}
			if overflow {
				want = word.Division[int8, int8]{Quotient: -128}
			}

			r.Checked++
			if f.Error != overflow || f.Value != want {
				r.Failures++
				logger.Error("int8 division mismatch",
					zap.Int("dividend", a),
					zap.Int("divisor", d),
					zap.Int8("quotient", f.Value.Quotient),
					zap.Int8("remainder", f.Value.Remainder),
					zap.Bool("error", f.Error),
				)
			}

			ua, ud := uint8(a), uint8(d)
			u := systems.Division(ua, guarantee.Must(guarantee.NonzeroOf(ud)))

			r.Checked++
			if u.Error || u.Value.Quotient != ua/ud || u.Value.Remainder != ua%ud {
				r.Failures++
				logger.Error("uint8 division mismatch",
					zap.Uint8("dividend", ua),
					zap.Uint8("divisor", ud),
					zap.Uint8("quotient", u.Value.Quotient),
					zap.Uint8("remainder", u.Value.Remainder),
				)
			}
		}
	}

	more, err := longDivisions[uint8](ctx, logger, rng, iterations)
	r.Add(more)

	return r, err
}

func randomBig(rng *rand.Rand, bits int) *big.Int {
	x := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(rng.Intn(bits)+1)))
	if rng.Intn(2) == 0 {
		x.Neg(x)
	}

	return x
}

func longDivisions[W word.Word](ctx context.Context, logger *zap.Logger, rng *rand.Rand, iterations int) (r Report, err error) {
	for i := 0; i < iterations; i++ {
		if i%every == 0 {
			if err = ctx.Err(); err != nil {
				return r, err
			}
		}

		a, d := randomBig(rng, 512), randomBig(rng, 256)
		if d.Sign() == 0 {
			d.SetInt64(1)
		}

		x := arbitrary.FromBig[W](a)
		y := guarantee.Must(guarantee.NonzeroValue(arbitrary.FromBig[W](d)))

		f := x.Division(y)
		q, rem := new(big.Int).QuoRem(a, d, new(big.Int))

		r.Checked++
		if f.Error || f.Value.Quotient.Big().Cmp(q) != 0 || f.Value.Remainder.Big().Cmp(rem) != 0 {
			r.Failures++
			logger.Error("long division mismatch",
				zap.String("dividend", a.String()),
				zap.String("divisor", d.String()),
				zap.String("quotient", f.Value.Quotient.String()),
				zap.String("remainder", f.Value.Remainder.String()),
			)
		}
	}

	return r, nil
}
