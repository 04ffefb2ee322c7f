package universe

import (
	"math/rand/v2"
	"time"
)

//RandomSource is a uniform generator over [0,1)
type RandomSource interface {
	Float64() float64
}

//NewRandomSource returns a PCG generator for the seed, seed 0 is replaced with the current time
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
