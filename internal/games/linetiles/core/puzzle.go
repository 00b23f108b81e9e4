package core

import "sync"

// Puzzle couples a board with its cached partition. A shift marks the
// cache dirty and the next read recomputes it, so a partition computed
// before a shift is never handed out afterwards. All methods are safe for
// concurrent use; a shift and the recompute that follows it never
// interleave with another shift.
type Puzzle struct {
	mu          sync.Mutex
	board       *Board
	partitioner *Partitioner
	partition   Partition
	dirty       bool
	moves       int
	recomputes  int
}

// NewPuzzle takes ownership of b.
func NewPuzzle(b *Board) *Puzzle {
	return &Puzzle{
		board:       b,
		partitioner: NewPartitioner(),
		dirty:       true,
	}
}

// Width returns the number of columns.
func (p *Puzzle) Width() int {
	return p.board.Width()
}

// Height returns the number of rows.
func (p *Puzzle) Height() int {
	return p.board.Height()
}

// Shift applies a move and invalidates the cached partition.
func (p *Puzzle) Shift(s Shift) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.board.Apply(s); err != nil {
		return err
	}
	p.moves++
	p.dirty = true
	return nil
}

// Partition returns the current match groups, recomputing them if the
// board changed since the last read.
func (p *Puzzle) Partition() (Partition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current()
}

func (p *Puzzle) current() (Partition, error) {
	if !p.dirty && p.partition.Generation == p.board.Generation() {
		return p.partition, nil
	}
	pt, err := p.partitioner.Recompute(p.board)
	if err != nil {
		return Partition{}, err
	}
	p.partition = pt
	p.dirty = false
	p.recomputes++
	return pt, nil
}

// View calls fn with the board and its up-to-date partition while holding
// the puzzle lock. fn must not modify or retain the board, and must not
// call other Puzzle methods.
func (p *Puzzle) View(fn func(b *Board, pt Partition)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pt, err := p.current()
	if err != nil {
		return err
	}
	fn(p.board, pt)
	return nil
}

// Board returns a copy of the current board.
func (p *Puzzle) Board() *Board {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.board.Clone()
}

// Dirty reports whether the cached partition is out of date.
func (p *Puzzle) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

// Moves returns the number of shifts applied.
func (p *Puzzle) Moves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moves
}

// Recomputes returns how many times the partition has been rebuilt.
func (p *Puzzle) Recomputes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recomputes
}
