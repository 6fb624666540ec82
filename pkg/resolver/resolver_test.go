package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
	"github.com/gnames/itismatch/pkg/reference"
	"github.com/gnames/itismatch/pkg/resolver"
	"github.com/gnames/itismatch/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key struct {
	name string
	rank taxon.Rank
}

// fakeAccessor keeps a tiny in-memory taxonomy and counts calls.
type fakeAccessor struct {
	accepted   map[key]taxon.Taxon
	synonyms   map[key]taxon.Taxon
	genera     map[string]string
	candidates map[string][]taxon.Taxon
	err        error
	calls      int
}

func (f *fakeAccessor) FindAcceptedExact(
	_ context.Context, n reference.Name, r taxon.Rank,
) (*taxon.Taxon, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.accepted[key{n.String(), r}]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeAccessor) FindSynonymAccepted(
	_ context.Context, n reference.Name, r taxon.Rank,
) (*taxon.Taxon, error) {
	f.calls++
	if t, ok := f.synonyms[key{n.String(), r}]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeAccessor) FindGenusSynonym(
	_ context.Context, genus string,
) (string, error) {
	f.calls++
	return f.genera[genus], nil
}

func (f *fakeAccessor) FindCandidates(
	_ context.Context, n reference.Name, _ taxon.Rank,
) ([]taxon.Taxon, error) {
	f.calls++
	return f.candidates[n.String()], nil
}

func (f *fakeAccessor) FindGerminationCode(
	context.Context, string,
) (int64, bool, error) {
	f.calls++
	return 0, false, nil
}

var (
	acerRubrum = taxon.Taxon{
		TSN: 28728, Rank: taxon.Species, CompleteName: "Acer rubrum",
		CommonNames: []string{"red maple"}, KingdomID: 3, Accepted: true,
	}
	symphyotrichum = taxon.Taxon{
		TSN: 541943, Rank: taxon.Species,
		CompleteName: "Symphyotrichum novae-angliae", KingdomID: 3,
		Accepted: true,
	}
	ericameria = taxon.Taxon{
		TSN: 196232, Rank: taxon.Species,
		CompleteName: "Ericameria nauseosa", KingdomID: 3, Accepted: true,
	}
	quercusAlba = taxon.Taxon{
		TSN: 19290, Rank: taxon.Species, CompleteName: "Quercus alba",
		KingdomID: 3, Accepted: true,
	}
)

func newFake() *fakeAccessor {
	return &fakeAccessor{
		accepted: map[key]taxon.Taxon{
			{"Acer rubrum", taxon.Species}:         acerRubrum,
			{"Ericameria nauseosa", taxon.Species}: ericameria,
		},
		synonyms: map[key]taxon.Taxon{
			{"Aster novae-angliae", taxon.Species}: symphyotrichum,
		},
		genera: map[string]string{
			"Chrysothamnus": "Ericameria",
		},
		candidates: map[string][]taxon.Taxon{
			"Quercus albus": {quercusAlba},
		},
	}
}

func record(genus, species string) taxon.Record {
	return taxon.Record{
		Line: 2, Genus: genus, Species: species,
		Rank: taxon.Species, Payload: "N",
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		msg     string
		rec     taxon.Record
		tsn     int64
		syn     bool
		via     taxon.Via
		genus   string
		candLen int
	}{
		{
			msg: "exact accepted",
			rec: record("Acer", "rubrum"),
			tsn: 28728, via: taxon.ViaExact,
		},
		{
			msg: "synonym",
			rec: record("Aster", "novae-angliae"),
			tsn: 541943, syn: true, via: taxon.ViaSynonym,
		},
		{
			msg: "genus synonym",
			rec: record("Chrysothamnus", "nauseosus"),
			tsn: 0, via: taxon.NotResolved, genus: "",
		},
		{
			msg: "genus synonym with same epithet",
			rec: record("Chrysothamnus", "nauseosa"),
			tsn: 196232, syn: true, via: taxon.ViaGenusSynonym,
			genus: "Ericameria",
		},
		{
			msg: "candidates only",
			rec: record("Quercus", "albus"),
			via: taxon.NotResolved, candLen: 1,
		},
		{
			msg: "nothing",
			rec: record("Nonexistia", "imaginaria"),
			via: taxon.NotResolved,
		},
	}

	for _, v := range tests {
		r := resolver.New(newFake(), nil)
		res, err := r.Resolve(context.Background(), v.rec)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.tsn, res.TSN, v.msg)
		assert.Equal(t, v.tsn != 0, res.Resolved(), v.msg)
		assert.Equal(t, v.syn, res.WasSynonym, v.msg)
		assert.Equal(t, v.via, res.Via, v.msg)
		assert.Equal(t, v.genus, res.Genus, v.msg)
		assert.Len(t, res.Candidates, v.candLen, v.msg)
		assert.Equal(t, v.rec, res.Record, v.msg)
		if res.Resolved() {
			require.NotNil(t, res.Taxon, v.msg)
			assert.True(t, res.Taxon.Accepted, v.msg)
			assert.Empty(t, res.Candidates, v.msg)
		} else {
			assert.Nil(t, res.Taxon, v.msg)
		}
	}
}

func TestResolveExactStopsChain(t *testing.T) {
	acc := newFake()
	r := resolver.New(acc, nil)
	res, err := r.Resolve(context.Background(), record("Acer", "rubrum"))
	require.NoError(t, err)
	assert.True(t, res.Resolved())
	assert.Equal(t, 1, acc.calls)
}

func TestResolveIdempotent(t *testing.T) {
	r := resolver.New(newFake(), nil)
	rec := record("Aster", "novae-angliae")
	res1, err := r.Resolve(context.Background(), rec)
	require.NoError(t, err)
	res2, err := r.Resolve(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, res1, res2)
}

func TestResolveStoreError(t *testing.T) {
	acc := newFake()
	acc.err = errors.New("disk I/O error")
	r := resolver.New(acc, nil)

	_, err := r.Resolve(context.Background(), record("Acer", "rubrum"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ResolveQueryError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, acc.err)
}

func TestResolveCancelled(t *testing.T) {
	acc := newFake()
	r := resolver.New(acc, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, record("Acer", "rubrum"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ResolveCancelledError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, context.Canceled)
	assert.Zero(t, acc.calls)
}
