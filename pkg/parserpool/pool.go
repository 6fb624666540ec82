// Package parserpool provides a pool of botanical gnparser instances for
// concurrent name parsing.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides parsers that are safe for concurrent use.
type Pool interface {
	// Parse parses a scientific name string with the botanical code.
	// It blocks while all parsers are busy.
	Parse(nameString string) parsed.Parsed

	// Close shuts down the pool. After calling Close, the pool should
	// not be used.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a parser pool with the specified number of parsers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size < 1 {
		size = runtime.NumCPU()
	}

	// details are needed to read words of a name
	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
		gnparser.OptWithDetails(true),
	)
	return &pool{ch: gnparser.NewPool(cfg, size)}
}

// Parse implements Pool.
func (p *pool) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	defer func() { p.ch <- parser }()
	return parser.ParseName(nameString)
}

// Close implements Pool.
func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
