package sculpt

// Automasker multiplies an automatically generated per-vertex mask into a
// factor buffer. Implementations derive the mask from mesh properties
// (cavity, topology, color) and must be pure with respect to the mesh:
// they read geometry and write only the passed factors.
type Automasker interface {
	// VertFactors multiplies the automask value of each of the node's
	// vertices into factors (one entry per node vertex).
	VertFactors(m Mesh, n Node, factors []float32)
}

// AutomaskFunc adapts a plain function to the Automasker interface.
type AutomaskFunc func(m Mesh, n Node, factors []float32)

// VertFactors implements Automasker.
func (f AutomaskFunc) VertFactors(m Mesh, n Node, factors []float32) { f(m, n, factors) }
