package testbench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/i5heu/boundedkit/pkg/errs"
)

// Config describes the workload: how large the container is, which keys are
// drawn and from which seed.
type Config struct {
	Capacity int   `yaml:"capacity" json:"capacity"`
	KeySpace int   `yaml:"key_space" json:"key_space"`
	Seed     int64 `yaml:"seed" json:"seed"`
}

// Target adapts one container to the benchmark workload. Remove receives a
// key; containers with a fixed removal end (queue, stack) ignore it.
type Target interface {
	Insert(key int) error
	Remove(key int) error
	Len() int
	Close() error
}

// OpKind is the kind of a workload step.
type OpKind int

const (
	OpInsert OpKind = iota
	OpRemove
)

func (k OpKind) String() string {
	if k == OpInsert {
		return "insert"
	}
	return "remove"
}

// Op is one workload step.
type Op struct {
	Kind OpKind
	Key  int
}

// Generate returns n workload steps drawn from cfg.Seed. Inserts and removes
// are equally likely, keys are uniform in [0, cfg.KeySpace).
func Generate(cfg Config, n int) []Op {
	rng := rand.New(rand.NewSource(cfg.Seed))
	keySpace := cfg.KeySpace
	if keySpace <= 0 {
		keySpace = 1
	}
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{Kind: OpKind(rng.Intn(2)), Key: rng.Intn(keySpace)}
	}
	return ops
}

// Replay applies ops in order and returns the error of each step, nil for
// successful steps.
func Replay[W Target](w W, ops []Op) []error {
	out := make([]error, len(ops))
	for i, op := range ops {
		out[i] = apply(w, op)
	}
	return out
}

func apply[W Target](w W, op Op) error {
	if op.Kind == OpInsert {
		return w.Insert(op.Key)
	}
	return w.Remove(op.Key)
}

// checkEvery is how many steps run between deadline checks.
const checkEvery = 1024

// RunTimedTest drives w with a random workload for testDuration.
// Steps that the container rejects (full, empty, duplicate, not found) are
// counted separately from successful ones; any other error ends the run and
// is returned.
// Returns the successful ops, the rejected ops and the actual elapsed time.
func RunTimedTest[W Target](
	w W,
	cfg Config,
	testDuration time.Duration,
) (ops int64, rejected int64, elapsed time.Duration, err error) {

	// Create a context that will cancel after testDuration.
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	// Pre-generate a block of steps so key generation stays off the hot path.
	block := Generate(cfg, checkEvery)

	start := time.Now()
	for ctx.Err() == nil {
		for _, op := range block {
			stepErr := apply(w, op)
			switch {
			case stepErr == nil:
				ops++
			case errs.IsRejection(stepErr):
				rejected++
			default:
				return ops, rejected, time.Since(start), fmt.Errorf("testbench: %s %d: %w", op.Kind, op.Key, stepErr)
			}
		}
	}
	return ops, rejected, time.Since(start), nil
}
