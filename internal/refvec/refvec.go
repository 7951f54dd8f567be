// SPDX-License-Identifier: MIT

package refvec

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsofa/epoch"
	"github.com/katalvlaran/lvlsofa/rotation"
)

// Vector is one published reference case.
type Vector struct {
	Name     string                 `yaml:"name"`
	Date     []float64              `yaml:"date,omitempty"`
	Date2    []float64              `yaml:"date2,omitempty"`
	Tol      float64                `yaml:"tol"`
	Inputs   map[string]float64     `yaml:"inputs,omitempty"`
	Values   map[string]float64     `yaml:"values,omitempty"`
	Matrices map[string][][]float64 `yaml:"matrices,omitempty"`
}

// Set indexes vectors by name.
type Set map[string]Vector

// Load decodes a YAML sequence of vectors from r.
//
// Stage 1 (Decode): yaml.v3 strict decoding (unknown fields rejected).
// Stage 2 (Validate): names unique, every matrix 3×3.
func Load(r io.Reader) (Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var list []Vector
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("refvec: decode: %w", err)
	}

	set := make(Set, len(list))
	for _, v := range list {
		if _, dup := set[v.Name]; dup {
			return nil, fmt.Errorf("Load: %q: %w", v.Name, ErrDuplicate)
		}
		for key, m := range v.Matrices {
			if _, err := toMatrix(m); err != nil {
				return nil, fmt.Errorf("Load: %s.%s: %w", v.Name, key, err)
			}
		}
		set[v.Name] = v
	}

	return set, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("refvec: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Get returns the vector called name.
func (s Set) Get(name string) (Vector, error) {
	v, ok := s[name]
	if !ok {
		return Vector{}, fmt.Errorf("Get(%q): %w", name, ErrNotFound)
	}

	return v, nil
}

// Epoch returns the primary date of v.
func (v Vector) Epoch() epoch.Date {
	return pair(v.Date)
}

// Epoch2 returns the secondary date of v (UT1 for routines that take two
// time scales). It falls back to the primary date.
func (v Vector) Epoch2() epoch.Date {
	if len(v.Date2) == 0 {
		return v.Epoch()
	}

	return pair(v.Date2)
}

// Value returns the named scalar, or ErrMissingKey.
func (v Vector) Value(key string) (float64, error) {
	x, ok := v.Values[key]
	if !ok {
		return 0, fmt.Errorf("%s.values.%s: %w", v.Name, key, ErrMissingKey)
	}

	return x, nil
}

// Input returns the named input, or ErrMissingKey.
func (v Vector) Input(key string) (float64, error) {
	x, ok := v.Inputs[key]
	if !ok {
		return 0, fmt.Errorf("%s.inputs.%s: %w", v.Name, key, ErrMissingKey)
	}

	return x, nil
}

// Matrix returns the named matrix, or ErrMissingKey.
func (v Vector) Matrix(key string) (rotation.Matrix, error) {
	m, ok := v.Matrices[key]
	if !ok {
		return rotation.Matrix{}, fmt.Errorf("%s.matrices.%s: %w", v.Name, key, ErrMissingKey)
	}

	return toMatrix(m)
}

func toMatrix(m [][]float64) (rotation.Matrix, error) {
	var out rotation.Matrix
	if len(m) != 3 {
		return out, ErrBadMatrix
	}
	for i, row := range m {
		if len(row) != 3 {
			return out, ErrBadMatrix
		}
		copy(out[i][:], row)
	}

	return out, nil
}

func pair(d []float64) epoch.Date {
	switch len(d) {
	case 0:
		return epoch.Date{}
	case 1:
		return epoch.FromJD(d[0])
	default:
		return epoch.New(d[0], d[1])
	}
}
