package linetiles

import (
	"math/rand"

	"github.com/vovakirdan/linetiles/internal/config"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/core"
)

// Generator deals random boards. Shapes follow the configured weights and
// rotations are uniform. The same seed always deals the same sequence of
// boards.
type Generator struct {
	rng     *rand.Rand
	weights []int
	total   int
}

// NewGenerator creates a generator. Weights must not all be zero; a
// validated config guarantees that.
func NewGenerator(seed int64, weights config.ShapeWeights) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		weights: weights.Slice(),
		total:   weights.Total(),
	}
}

// Board deals a w×h board.
func (g *Generator) Board(w, h int) (*core.Board, error) {
	return core.NewBoard(w, h, func(core.Position) core.TileSpec {
		return g.Spec()
	})
}

// Spec draws one tile.
func (g *Generator) Spec() core.TileSpec {
	return core.TileSpec{
		Shape:    g.shape(),
		Rotation: core.Rotations()[g.rng.Intn(len(core.Rotations()))],
	}
}

func (g *Generator) shape() core.Shape {
	shapes := core.Shapes()
	if g.total <= 0 {
		return shapes[g.rng.Intn(len(shapes))]
	}
	n := g.rng.Intn(g.total)
	for i, w := range g.weights {
		if n < w {
			return shapes[i]
		}
		n -= w
	}
	return shapes[len(shapes)-1]
}
