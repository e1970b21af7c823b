package main

import (
	"fmt"

	"github.com/chrisculver/postflop-solver/leduc"
)

// TreeCmd prints the game tree's shape and the storage the solver
// would allocate for it.
type TreeCmd struct {
	Compressed bool `help:"Report the footprint of 16-bit quantized storage"`
}

func (c *TreeCmd) Run() error {
	var opts []leduc.Option
	if c.Compressed {
		opts = append(opts, leduc.WithCompression())
	}
	g := leduc.NewGame(opts...)
	fmt.Println(renderTree(g))
	return nil
}
