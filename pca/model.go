// Package pca: persistence of fitted models.
//
// A fitted Engine is a flat tagged record — dimensions, mean, direction
// matrix, variance spectrum, latent bounds — with no derived or redundant
// fields. Save writes it as JSON; Load restores an Engine that transforms
// identically to the original. Loading validates shape consistency only;
// numeric properties (orthonormality, ordering) are taken on trust from
// the record, matching what Fit produced.
package pca

import (
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Model is the serialized form of a fitted Engine.
//
// Components is the F×K direction matrix in row-major order:
// Components[i*Latent+j] is row i, column j. LatentMin/LatentMax are the
// per-coordinate empirical bounds, parallel-indexed with Variances.
type Model struct {
	Features      int       `json:"features"`
	Latent        int       `json:"latent"`
	Mean          []float64 `json:"mean"`
	Components    []float64 `json:"components"`
	Variances     []float64 `json:"variances"`
	TotalVariance float64   `json:"total_variance"`
	LatentMin     []float64 `json:"latent_min"`
	LatentMax     []float64 `json:"latent_max"`
}

// Model extracts the tagged record of a fitted Engine. All slices are
// copies; mutating the record does not affect the Engine.
func (e *Engine) Model() (*Model, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	m := &Model{
		Features:      e.f,
		Latent:        e.k,
		Mean:          make([]float64, e.f),
		Components:    make([]float64, e.f*e.k),
		Variances:     make([]float64, e.k),
		TotalVariance: e.totalVariance,
		LatentMin:     make([]float64, e.k),
		LatentMax:     make([]float64, e.k),
	}
	copy(m.Mean, e.mean)
	copy(m.Variances, e.variances)
	for i := 0; i < e.f; i++ {
		copy(m.Components[i*e.k:(i+1)*e.k], e.components.RawRowView(i))
	}
	for i, b := range e.bounds {
		m.LatentMin[i] = b.Min
		m.LatentMax[i] = b.Max
	}

	return m, nil
}

// Save writes the fitted Engine to w as a JSON Model record.
func (e *Engine) Save(w io.Writer) error {
	m, err := e.Model()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}

// FromModel reconstructs a fitted Engine from a Model record.
//
// The record is validated for shape consistency: positive dimensions,
// Latent ≤ Features, and every slice length matching the declared
// dimensions. Any violation raises ErrBadModel with the offending field
// named.
func FromModel(m *Model) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("from model: nil record: %w", ErrBadModel)
	}
	if m.Features < 1 || m.Latent < 1 || m.Latent > m.Features {
		return nil, fmt.Errorf("from model: dimensions %d×%d: %w", m.Features, m.Latent, ErrBadModel)
	}
	if len(m.Mean) != m.Features {
		return nil, fmt.Errorf("from model: mean length %d, want %d: %w", len(m.Mean), m.Features, ErrBadModel)
	}
	if len(m.Components) != m.Features*m.Latent {
		return nil, fmt.Errorf("from model: components length %d, want %d: %w",
			len(m.Components), m.Features*m.Latent, ErrBadModel)
	}
	if len(m.Variances) != m.Latent {
		return nil, fmt.Errorf("from model: variances length %d, want %d: %w", len(m.Variances), m.Latent, ErrBadModel)
	}
	if len(m.LatentMin) != m.Latent || len(m.LatentMax) != m.Latent {
		return nil, fmt.Errorf("from model: bounds lengths %d/%d, want %d: %w",
			len(m.LatentMin), len(m.LatentMax), m.Latent, ErrBadModel)
	}
	for i := 0; i < m.Latent; i++ {
		if m.LatentMin[i] > m.LatentMax[i] {
			return nil, fmt.Errorf("from model: bound %d min %g > max %g: %w",
				i, m.LatentMin[i], m.LatentMax[i], ErrBadModel)
		}
	}

	e := &Engine{
		mean:          make([]float64, m.Features),
		components:    mat.NewDense(m.Features, m.Latent, nil),
		variances:     make([]float64, m.Latent),
		totalVariance: m.TotalVariance,
		bounds:        make([]Bound, m.Latent),
		f:             m.Features,
		k:             m.Latent,
		fitted:        true,
	}
	copy(e.mean, m.Mean)
	copy(e.variances, m.Variances)
	for i := 0; i < m.Features; i++ {
		for j := 0; j < m.Latent; j++ {
			e.components.Set(i, j, m.Components[i*m.Latent+j])
		}
	}
	for i := range e.bounds {
		e.bounds[i] = Bound{Min: m.LatentMin[i], Max: m.LatentMax[i]}
	}

	return e, nil
}

// Load reads a JSON Model record from r and reconstructs a fitted Engine.
// Malformed JSON is reported as a decode error; a well-formed record with
// inconsistent shapes raises ErrBadModel.
func Load(r io.Reader) (*Engine, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("pca: load: %w", err)
	}

	return FromModel(&m)
}
