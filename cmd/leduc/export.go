package main

import (
	"encoding/json"
	"fmt"

	"github.com/chrisculver/postflop-solver/internal/fileutil"
	"github.com/chrisculver/postflop-solver/leduc"
)

// strategyFile is the JSON document written by solve --export.
// Strategy and ExpectedValues are indexed [action][hand], with hands
// ordered as in Hands.
type strategyFile struct {
	Game           string     `json:"game"`
	Storage        string     `json:"storage"`
	Exploitability float32    `json:"exploitability"`
	Value          float64    `json:"value"`
	Hands          []string   `json:"hands"`
	Nodes          []nodeDump `json:"nodes"`
}

type nodeDump struct {
	Path           string      `json:"path"`
	Player         int         `json:"player"`
	Pot            int         `json:"pot"`
	Actions        []string    `json:"actions"`
	Strategy       [][]float64 `json:"strategy"`
	ExpectedValues [][]float64 `json:"expected_values"`
}

func exportStrategy(path string, g *leduc.Game, exploitability float32) error {
	storage := "float32"
	if g.IsCompressionEnabled() {
		storage = "uint16"
	}
	file := strategyFile{
		Game:           "leduc",
		Storage:        storage,
		Exploitability: exploitability,
		Value:          rootValue(g),
		Hands:          handNames(),
	}
	collectNodes(g, g.Root().(*leduc.Node), "", &file.Nodes)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}

func handNames() []string {
	names := make([]string, leduc.NumPrivateHands)
	for i := range names {
		names[i] = leduc.Card(i).String()
	}
	return names
}

// collectNodes appends every decision node in depth-first order, with
// paths built from the action strings along the way. The root's path
// is empty.
func collectNodes(g *leduc.Game, n *leduc.Node, path string, out *[]nodeDump) {
	if n.Kind() == leduc.DecisionNode {
		actions := make([]string, n.NumActions())
		for i := range actions {
			actions[i] = n.ActionAt(i).String()
		}
		*out = append(*out, nodeDump{
			Path:           path,
			Player:         n.Player(),
			Pot:            n.Pot(),
			Actions:        actions,
			Strategy:       nodeStrategy(g, n),
			ExpectedValues: nodeExpectedValues(g, n),
		})
	}
	for i := 0; i < n.NumActions(); i++ {
		segment := n.ActionAt(i).String()
		next := segment
		if path != "" {
			next = path + "/" + segment
		}
		collectNodes(g, n.Play(i).(*leduc.Node), next, out)
	}
}
