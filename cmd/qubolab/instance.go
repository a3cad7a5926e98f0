package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// itemsInstance is the YAML shape for item-list problems.
//
//	items: [25, 7, 13, 31]
type itemsInstance struct {
	Items []int `yaml:"items"`
}

// graphInstance is the YAML shape for graph problems.
//
//	vertices: 3
//	edges:
//	  - {u: 0, v: 1, weight: 1}
//	  - {u: 1, v: 2, weight: 2.5}
//
// Weight is ignored by the vertex-cover command.
type graphInstance struct {
	Vertices int        `yaml:"vertices"`
	Edges    []edgeSpec `yaml:"edges"`
}

type edgeSpec struct {
	U      int     `yaml:"u"`
	V      int     `yaml:"v"`
	Weight float64 `yaml:"weight"`
}

// stocksInstance is the YAML shape for order partitioning: stock names,
// their values, and one risk row per factor.
type stocksInstance struct {
	Names  []string    `yaml:"names"`
	Values []float64   `yaml:"values"`
	Risk   [][]float64 `yaml:"risk"`
}

// loadInstance decodes a YAML instance file into out. Unknown keys are
// rejected so a misspelled field fails loudly instead of silently
// falling back to the built-in example values.
func loadInstance(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("instance file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("instance file %s: %w", path, err)
	}

	return nil
}
