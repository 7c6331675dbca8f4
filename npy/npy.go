// Package npy persists spectrograms as NumPy .npy arrays.
package npy

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Save writes m as a 2-D float64 array in C order.
func Save(filename string, m *mat.Dense) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := npyio.Write(f, m); err != nil {
		return fmt.Errorf("failed to encode array: %v", err)
	}
	return f.Close()
}

// Shape reports the array dimensions recorded in the file header.
func Shape(filename string) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read npy header: %v", err)
	}
	return r.Header.Descr.Shape, nil
}

// Load reads a 2-D float64 array back into a matrix.
func Load(filename string) (*mat.Dense, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read npy header: %v", err)
	}
	shape := r.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("expected a 2-D array, got shape %v", shape)
	}

	data := make([]float64, shape[0]*shape[1])
	if err := r.Read(&data); err != nil {
		return nil, fmt.Errorf("failed to read npy data: %v", err)
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}
