package confgen_test

import (
	"fmt"

	"github.com/katalvlaran/geogen/confgen"
	"github.com/katalvlaran/geogen/term"
)

// ExampleGenerator_Next expands a bare triangle by one midpoint round.
// The three possible midpoints are images of one another under the vertex
// symmetry, so a single configuration survives deduplication.
func ExampleGenerator_Next() {
	cfg, err := term.NewLooseHolder(term.Triangle)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mid, err := term.ByName("Midpoint")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	gen, err := confgen.New(cfg, []*term.Construction{mid},
		confgen.WithIterations(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n := 0
	for {
		_, ok, err := gen.Next()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if !ok {
			break
		}
		n++
	}
	fmt.Println(n)
	// Output:
	// 1
}
