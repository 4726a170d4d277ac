package confgen

import (
	"github.com/katalvlaran/geogen/arggen"
	"github.com/katalvlaran/geogen/canon"
	"github.com/katalvlaran/geogen/term"
)

// Generator is the pull-based breadth-first configuration stream.
// Not safe for concurrent use: one goroutine drives Next and owns the
// accepted-key set; workers downstream only ever read emitted
// configurations.
type Generator struct {
	opts      Options
	catalogue []*term.Construction

	// accepted holds hashes of canonical keys already seen, the initial
	// configuration's included.
	accepted map[uint64]struct{}

	// current is the queue being expanded; next collects accepted children
	// for the following depth.
	current []*term.Configuration
	next    []*term.Configuration
	depth   int

	// expansion cursor: parent index, construction index, live tuple
	// stream, and the pending (tuple, output-index) position.
	parentIdx int
	conIdx    int
	stream    *arggen.Stream
	tuple     []term.Argument
	outIdx    int
	exhausted bool
}

// New validates the options and prepares a generator over the initial
// configuration and the allowed construction catalogue.
func New(initial *term.Configuration, catalogue []*term.Construction, opts ...Option) (*Generator, error) {
	if initial == nil {
		return nil, ErrNilConfiguration
	}
	if len(catalogue) == 0 {
		return nil, ErrEmptyCatalogue
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	key, err := canon.Key(initial)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		opts:      o,
		catalogue: catalogue,
		accepted:  map[uint64]struct{}{canon.Hash(key): {}},
		current:   []*term.Configuration{initial},
		depth:     1,
	}
	if o.Iterations == 0 {
		g.exhausted = true
	}
	return g, nil
}

// Accepted returns how many canonical keys have been accepted so far,
// counting the initial configuration.
func (g *Generator) Accepted() int { return len(g.accepted) }

// Next returns the next accepted configuration in breadth-first order,
// already rewritten into canonical identifier form with Last set to the
// added object. The second result is false when the stream is exhausted;
// the error is non-nil only for cancellation or a canonicalization fault.
func (g *Generator) Next() (*term.Configuration, bool, error) {
	for !g.exhausted {
		// cancellation check (once per candidate)
		select {
		case <-g.opts.Ctx.Done():
			return nil, false, g.opts.Ctx.Err()
		default:
		}

		if g.tuple == nil {
			g.advance()
			continue
		}

		parent := g.current[g.parentIdx]
		con := g.catalogue[g.conIdx]
		tuple := g.tuple
		idx := g.outIdx

		// Step the (tuple, output-index) cursor before any skip path.
		g.outIdx++
		if g.outIdx >= con.Outputs {
			g.tuple = nil
			g.outIdx = 0
		}

		if g.stream.Taken(term.TupleKey(tuple), idx) {
			continue
		}

		cand, err := g.candidate(parent, con, tuple, idx)
		if err != nil {
			return nil, false, err
		}
		if cand == nil {
			continue // canonical key already accepted
		}
		g.next = append(g.next, cand)
		return cand, true, nil
	}
	return nil, false, nil
}

// candidate extends parent by one object, canonicalizes, and returns the
// rewritten configuration — or nil when the key is a duplicate.
func (g *Generator) candidate(parent *term.Configuration, con *term.Construction, tuple []term.Argument, outIdx int) (*term.Configuration, error) {
	o := &term.Object{
		ID:           parent.NextID(),
		Type:         con.Output,
		Construction: con,
		Args:         tuple,
		OutIndex:     outIdx,
	}
	cand := parent.Append(o)

	key, remap, err := canon.Least(cand)
	if err != nil {
		return nil, err
	}
	h := canon.Hash(key)
	if _, dup := g.accepted[h]; dup {
		return nil, nil
	}
	g.accepted[h] = struct{}{}
	return canon.Rewrite(cand, remap)
}

// advance repositions the cursor: next tuple from the live stream, else
// next construction, next parent, or the next depth. Exhaustion is reached
// when the final depth's queue is drained.
func (g *Generator) advance() {
	if g.stream != nil {
		if tuple, ok := g.stream.Next(); ok {
			g.tuple = tuple
			g.outIdx = 0
			return
		}
		g.stream = nil
		g.conIdx++
	}
	if g.parentIdx < len(g.current) && g.conIdx < len(g.catalogue) {
		g.stream = arggen.New(g.current[g.parentIdx], g.catalogue[g.conIdx])
		return
	}
	// Constructions for this parent drained: next parent.
	g.conIdx = 0
	g.parentIdx++
	if g.parentIdx < len(g.current) {
		g.stream = arggen.New(g.current[g.parentIdx], g.catalogue[g.conIdx])
		return
	}
	// Depth drained: promote the queue for the next depth.
	if g.depth >= g.opts.Iterations || len(g.next) == 0 {
		g.exhausted = true
		return
	}
	g.depth++
	g.current, g.next = g.next, nil
	g.parentIdx = 0
	g.stream = arggen.New(g.current[0], g.catalogue[0])
}
