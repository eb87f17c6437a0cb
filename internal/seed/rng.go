package seed

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// NewSeededRNG creates a seeded random number generator.
// If seed is 0, uses current time and logs the seed for reproducibility.
func NewSeededRNG(seed int64, log *logrus.Logger) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.WithField("seed", seed).Info("using random seed")
	}
	return rand.New(rand.NewSource(seed))
}
