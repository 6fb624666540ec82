package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/itismatch/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	for _, jobs := range []int{0, 1, 4} {
		pool := parserpool.NewPool(jobs)
		require.NotNil(t, pool)

		res := pool.Parse("Acer rubrum L.")
		assert.True(t, res.Parsed)
		assert.Equal(t, "Acer rubrum", res.Canonical.Simple)
		pool.Close()
	}
}

func TestParseDetails(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	res := pool.Parse("Poa annua subsp. supina (Schrad.) Link")
	require.True(t, res.Parsed)
	assert.Equal(t, 3, res.Cardinality)

	var epithets []string
	for _, w := range res.Words {
		if w.Type == parsed.InfraspEpithetType {
			epithets = append(epithets, w.Normalized)
		}
	}
	assert.Equal(t, []string{"supina"}, epithets)
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	names := []string{
		"Acer rubrum", "Aster novae-angliae", "Quercus alba",
		"Chrysothamnus nauseosus", "Symphyotrichum novae-angliae",
	}

	var wg sync.WaitGroup
	res := make([]string, len(names))
	for i, v := range names {
		wg.Go(func() {
			res[i] = pool.Parse(v).Canonical.Simple
		})
	}
	wg.Wait()

	assert.Equal(t, names, res)
}
