package dataset

import (
	"math/rand/v2"
	"time"

	"github.com/roach88/insumos/internal/record"
)

// DefaultSeed is the seed used when the caller does not pick one.
const DefaultSeed uint64 = 42

// Categories lists the diagnostic procedures used by the generator.
var Categories = []string{
	"Hemograma completo",
	"Cultura microbiológica",
	"Glicemia em jejum",
	"PCR",
	"Sorologia (HIV)",
}

// Materials lists the consumables used by the generator.
var Materials = []string{
	"Agulha 25x7",
	"Swab estéril",
	"Seringa 5ml",
	"Tubo EDTA 4ml",
	"Luva nitrílica M",
	"Luva nitrílica G",
	"Tubo Citrato 3,2%",
}

const (
	maxQuantity   = 200
	maxExpiryDays = 365
)

// Generate returns n synthetic records. The same seed and now always give
// the same batch. Quantities fall in [1, 200] and every record expires
// between 0 and 365 days after now.
func Generate(n int, seed uint64, now time.Time) []record.Record {
	if n <= 0 {
		return []record.Record{}
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]record.Record, 0, n)
	for i := 0; i < n; i++ {
		name := Materials[rng.IntN(len(Materials))]
		category := Categories[rng.IntN(len(Categories))]
		quantity := 1 + rng.IntN(maxQuantity)
		expiry := now.AddDate(0, 0, rng.IntN(maxExpiryDays+1))

		out = append(out, record.MustNew(name, quantity, category, record.ExpiresAt(expiry)))
	}
	return out
}
