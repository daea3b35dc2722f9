package sculpt

import "cogentcore.org/core/math32"

// ScratchBuffers is the reusable per-worker scratch state for brush
// evaluation. A dispatcher hands each task the buffers owned by the worker
// executing it, so no locking is needed and allocations amortize across
// the nodes a worker processes.
//
// Every accessor resizes its buffer to the current node's vertex count;
// contents are fully overwritten before use and never read across node
// boundaries.
type ScratchBuffers struct {
	factors      []float32
	distances    []float32
	positions    []math32.Vector3
	normals      []math32.Vector3
	newPositions []math32.Vector3
	translations []math32.Vector3
}

// Factors returns the factor buffer resized to n entries.
func (s *ScratchBuffers) Factors(n int) []float32 {
	s.factors = resize(s.factors, n)
	return s.factors
}

// Distances returns the distance buffer resized to n entries.
func (s *ScratchBuffers) Distances(n int) []float32 {
	s.distances = resize(s.distances, n)
	return s.distances
}

// Positions returns the position buffer resized to n entries.
func (s *ScratchBuffers) Positions(n int) []math32.Vector3 {
	s.positions = resize(s.positions, n)
	return s.positions
}

// Normals returns the normal buffer resized to n entries.
func (s *ScratchBuffers) Normals(n int) []math32.Vector3 {
	s.normals = resize(s.normals, n)
	return s.normals
}

// NewPositions returns the target-position buffer resized to n entries.
func (s *ScratchBuffers) NewPositions(n int) []math32.Vector3 {
	s.newPositions = resize(s.newPositions, n)
	return s.newPositions
}

// Translations returns the translation buffer resized to n entries.
func (s *ScratchBuffers) Translations(n int) []math32.Vector3 {
	s.translations = resize(s.translations, n)
	return s.translations
}

// resize returns buf with length n, reusing its capacity when possible.
func resize[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
