// SPDX-License-Identifier: MIT

// Package matrix - YAML codec.
//
// A matrix is encoded as a sequence of sequences of floats, one inner
// sequence per row:
//
//	- [1, 2]
//	- [3, 4]
//
// Decoding goes through FromRows, so ragged input is accepted as-is; operators
// reject it later with ErrRaggedRows.

package matrix

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	opDecode = "Decode"
	opEncode = "Encode"

	yamlIndent = 2
)

// Compile-time assertions for yaml.v3 conformance.
var (
	_ yaml.Marshaler   = (*Matrix)(nil)
	_ yaml.Unmarshaler = (*Matrix)(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	return m.ToSlices(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A null node decodes to 0×0.
func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	var data [][]float64
	if err := value.Decode(&data); err != nil {
		return err
	}
	*m = *FromRows(data)

	return nil
}

// Decode reads one YAML document from r and returns the matrix it holds.
func Decode(r io.Reader) (*Matrix, error) {
	m := new(Matrix)
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		return nil, matrixErrorf(opDecode, err)
	}

	return m, nil
}

// Encode writes m to w as a YAML document.
func Encode(w io.Writer, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	if err := enc.Close(); err != nil {
		return matrixErrorf(opEncode, fmt.Errorf("close: %w", err))
	}

	return nil
}
