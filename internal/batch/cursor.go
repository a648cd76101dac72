package batch

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/snail/internal/matrix"
)

// maxJitter bounds the random skip added to each sample index drawn by Cursor.
const maxJitter = 3

// Cursor walks a batch sequentially, handing out consecutive chunks.
//
// Each sample is taken at (position + j) mod Len(), where j is drawn from
// [0, maxJitter) per sample and position advances by one per sample, so
// successive chunks sweep through the data with slight random skips.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	src      *Batch
	position int
	rng      *rand.Rand
}

// NewCursor creates a cursor over src starting at sample 0.
// A nil rng uses the package source.
func NewCursor(src *Batch, rng *rand.Rand) *Cursor {
	return &Cursor{src: src, rng: rng}
}

// Position returns the index of the next sample before jitter.
func (c *Cursor) Position() int { return c.position }

// Next returns the next chunk of size samples and advances the cursor.
func (c *Cursor) Next(size int) (*Batch, error) {
	if size < 0 {
		return nil, fmt.Errorf("next chunk: %w: negative size %d", matrix.ErrOutOfBounds, size)
	}
	n := c.src.Len()
	if n == 0 {
		return nil, fmt.Errorf("next chunk: %w", matrix.ErrEmpty)
	}
	in := matrix.NewRowBuilder(c.src.InputSize(), size)
	out := matrix.NewRowBuilder(c.src.OutputSize(), size)
	for i := 0; i < size; i++ {
		x, y := c.src.Sample((c.position + c.jitter()) % n)
		_ = in.AddRow(x)
		_ = out.AddRow(y)
		c.position = (c.position + 1) % n
	}
	return &Batch{input: in.Build(), expected: out.Build()}, nil
}

func (c *Cursor) jitter() int {
	if c.rng != nil {
		return c.rng.IntN(maxJitter)
	}
	return rand.IntN(maxJitter)
}
