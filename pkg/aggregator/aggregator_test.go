package aggregator_test

import (
	"testing"

	"github.com/gnames/itismatch/pkg/aggregator"
	"github.com/gnames/itismatch/pkg/taxon"
	"github.com/stretchr/testify/assert"
)

func TestStatusMerger(t *testing.T) {
	m := aggregator.NewStatusMerger()
	assert.True(t, m.Add(500, taxon.Introduced))
	assert.True(t, m.Add(100, taxon.Unknown))
	assert.False(t, m.Add(500, taxon.Native))
	assert.False(t, m.Add(100, taxon.Introduced))
	assert.False(t, m.Add(500, taxon.Introduced))

	assert.Equal(t, 2, m.Len())
	st, ok := m.Get(500)
	assert.True(t, ok)
	assert.Equal(t, taxon.Native, st)
	_, ok = m.Get(1)
	assert.False(t, ok)

	assert.Equal(t, []aggregator.StatusEntry{
		{TSN: 100, Status: taxon.Introduced},
		{TSN: 500, Status: taxon.Native},
	}, m.Entries())
}

func TestStatusMergerOrderIndependent(t *testing.T) {
	statuses := []taxon.Status{
		taxon.Unknown, taxon.Introduced, taxon.Native, taxon.Introduced,
	}

	fwd := aggregator.NewStatusMerger()
	for _, v := range statuses {
		fwd.Add(7, v)
	}
	rev := aggregator.NewStatusMerger()
	for i := len(statuses) - 1; i >= 0; i-- {
		rev.Add(7, statuses[i])
	}
	assert.Equal(t, fwd.Entries(), rev.Entries())
}

func TestCodeDeduper(t *testing.T) {
	d := aggregator.NewCodeDeduper()
	assert.True(t, d.Add(30, 2))
	assert.True(t, d.Add(10, 2))
	assert.False(t, d.Add(30, 2))
	assert.True(t, d.Add(30, 1))

	assert.Equal(t, 3, d.Len())
	pairs := d.Pairs()
	assert.Equal(t, []aggregator.CodePair{
		{TSN: 30, CodeID: 2},
		{TSN: 10, CodeID: 2},
		{TSN: 30, CodeID: 1},
	}, pairs)

	pairs[0].TSN = 0
	assert.Equal(t, int64(30), d.Pairs()[0].TSN)
}

func TestStrategyInterface(t *testing.T) {
	var s aggregator.Strategy[taxon.Status] = aggregator.NewStatusMerger()
	s.Add(1, taxon.Native)
	assert.Equal(t, 1, s.Len())

	var c aggregator.Strategy[int64] = aggregator.NewCodeDeduper()
	c.Add(1, 5)
	c.Add(1, 5)
	assert.Equal(t, 1, c.Len())
}
