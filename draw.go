package sculpt

// DrawBrush applies one draw brush step to the given nodes: geometry is
// pushed outward along the sculpt normal, scaled per vertex by the factor
// pipeline. It shares the thumb brush's evaluation path; only the
// stroke-constant offset differs.
//
// As with the thumb brush, faced meshes commit raw translations while grid
// and dynamic-topology storage pass through mirror clipping and axis locks.
func (d *Dispatcher) DrawBrush(m Mesh, b *Brush, c *StrokeCache, nodes []Node) {
	offset := DrawOffset(c)
	_, faced := m.(*FacedMesh)
	Logger().Debug("sculpt: draw brush", "nodes", len(nodes), "radius", c.Radius)
	d.dispatch(m, nodes, func(tls *ScratchBuffers, i int) {
		offsetBrushNode(m, b, c, offset, nodes[i], tls, !faced)
	})
}
