package services

import (
	"fmt"
	"math/rand"
)

// serialNumberBase is the numeric suffix of the first generated serial; the
// rest of a run counts up from it, so relative ordering within one run is
// deterministic.
const serialNumberBase = 100

// SerialGenerator produces traceability serial numbers for line items
type SerialGenerator struct {
	rng *rand.Rand
}

// NewSerialGenerator creates a serial generator with a random seed
func NewSerialGenerator(seed int64) *SerialGenerator {
	return &SerialGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns count serials sharing a single randomized prefix, with
// strictly increasing numeric suffixes starting at 100. The prefix changes on
// every call, so repeated runs never collide with each other's suffix range.
func (g *SerialGenerator) Generate(count int) []string {
	prefix := fmt.Sprintf("SN-%d-", g.rng.Intn(1000))
	serials := make([]string, count)
	for i := range serials {
		serials[i] = fmt.Sprintf("%s%d", prefix, serialNumberBase+i)
	}
	return serials
}
