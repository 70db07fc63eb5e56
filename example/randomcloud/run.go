package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/akmonengine/octree"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/segmentio/encoding/json"
)

// Root region of the demo tree.
var (
	rootCenter = mgl64.Vec3{0, 0, 0}
	rootSize   = 10.0
)

type report struct {
	Size   int          `json:"size"`
	Probe  mgl64.Vec3   `json:"probe"`
	Found  bool         `json:"found"`
	Result string       `json:"result"`
	Stats  octree.Stats `json:"stats"`
}

// run fills a tree with size random points with integer coordinates in
// [0, size), inserts a probe point at a fixed fraction of size and looks it
// back up.
func run(size int, rng *rand.Rand) report {
	tree := octree.NewTree(rootCenter, rootSize)

	for i := 0; i < size; i++ {
		tree.Insert(mgl64.Vec3{
			float64(rng.IntN(size)),
			float64(rng.IntN(size)),
			float64(rng.IntN(size)),
		})
	}

	probe := mgl64.Vec3{
		0.444 * float64(size),
		0.666 * float64(size),
		0.888 * float64(size),
	}
	tree.Insert(probe)

	found, ok := tree.Query(probe)

	return report{
		Size:   size,
		Probe:  probe,
		Found:  ok,
		Result: formatResult(found, ok),
		Stats:  tree.Stats(),
	}
}

func formatResult(p mgl64.Vec3, ok bool) string {
	if !ok {
		return "None"
	}
	return fmt.Sprintf("Some(Point { x: %g, y: %g, z: %g })", p.X(), p.Y(), p.Z())
}

func writeReport(w io.Writer, rep report, indent bool) error {
	var b []byte
	var err error
	if indent {
		b, err = json.MarshalIndent(rep, "", "  ")
	} else {
		b, err = json.Marshal(rep)
	}
	if err != nil {
		return errors.New("encoding report failed").Wrap(err)
	}

	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return errors.New("writing report failed").Wrap(err)
	}
	return nil
}
