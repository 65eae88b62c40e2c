// ==============================================================================================
// FILE: internal/builtins/random.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Random/time* group of §6: rnd random rerandom pick timer. §5 says the generator
//          is process-wide and seeded by `rerandom`, and the wall-clock timer measures elapsed
//          process time — there is no library in the retrieved corpus that bridges either
//          concern, so both lean on the standard library (math/rand/v2, time); see DESIGN.md.
// ==============================================================================================

package builtins

import (
	"math/rand/v2"
	"time"

	"lunar/internal/eval"
	"lunar/internal/object"
)

var (
	rng          = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>1))
	processStart = time.Now()
)

func registerRandomTime() {
	define("rnd", 1, biRnd)
	define("random", 2, biRandom)
	define("rerandom", 1, biRerandom)
	define("pick", 1, biPick)
	define("timer", 0, biTimer)
}

func biRnd(scope *object.Scope, args []object.Value) (object.Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, eval.Errorf("rnd: argument must be positive")
	}
	return object.Int{Value: rng.Int64N(n)}, nil
}

func biRandom(scope *object.Scope, args []object.Value) (object.Value, error) {
	a, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if a > b {
		a, b = b, a
	}
	return object.Int{Value: a + rng.Int64N(b-a+1)}, nil
}

// biRerandom reseeds the process-wide generator (§5) so a program can make its own randomness
// reproducible.
func biRerandom(scope *object.Scope, args []object.Value) (object.Value, error) {
	seed, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	return object.NilValue, nil
}

func biPick(scope *object.Scope, args []object.Value) (object.Value, error) {
	l, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(*l.Elements) == 0 {
		return nil, eval.Errorf("pick: empty list")
	}
	return (*l.Elements)[rng.IntN(len(*l.Elements))], nil
}

func biTimer(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Float{Value: time.Since(processStart).Seconds()}, nil
}
