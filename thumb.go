package sculpt

import "cogentcore.org/core/math32"

// ThumbBrush applies one thumb brush step to the given nodes: geometry is
// pushed sideways along the grab direction, flattened against the sculpt
// plane. The offset is computed once per application from the stroke
// cache, then scaled per vertex by the factor pipeline.
//
// Faced meshes commit raw translations: mirror clipping and axis locks
// apply only to grid and dynamic-topology storage. A processed node is
// marked dirty even when every vertex was filtered out.
func (d *Dispatcher) ThumbBrush(m Mesh, b *Brush, c *StrokeCache, nodes []Node) {
	offset := ThumbOffset(c)
	_, faced := m.(*FacedMesh)
	Logger().Debug("sculpt: thumb brush", "nodes", len(nodes), "radius", c.Radius)
	d.dispatch(m, nodes, func(tls *ScratchBuffers, i int) {
		offsetBrushNode(m, b, c, offset, nodes[i], tls, !faced)
	})
}

// offsetBrushNode evaluates the factor pipeline for one node over the
// pre-stroke geometry and commits offset*factor translations. With
// clipLock the translations pass through mirror clipping and axis locks
// before the commit.
func offsetBrushNode(m Mesh, b *Brush, c *StrokeCache, offset math32.Vector3, n Node, tls *ScratchBuffers, clipLock bool) {
	count := m.NodeVertCount(n)
	if count == 0 {
		return
	}

	positions := tls.Positions(count)
	normals := tls.Normals(count)
	m.OrigData(n, positions, normals)

	factors := tls.Factors(count)
	m.FillHideMaskFactors(n, factors)
	FilterRegionClip(c, positions, factors)
	if b.FrontFace {
		CalcFrontFace(c.ViewNormal, normals, factors)
	}

	distances := tls.Distances(count)
	CalcDistances(c.Location, c.ViewNormal, b.FalloffShape, positions, distances)
	FilterDistancesWithRadius(c.Radius, distances, factors)
	ApplyHardness(c.Radius, c.Hardness, distances)
	ApplyFalloffCurve(b, c.Radius, distances, factors)

	if c.Automask != nil {
		c.Automask.VertFactors(m, n, factors)
	}
	if b.Texture != nil {
		CalcTextureFactors(b.Texture, positions, factors)
	}

	translations := tls.Translations(count)
	TranslationsFromOffset(offset, factors, translations)
	if clipLock {
		ClipAndLockTranslations(c, positions, translations)
	}
	m.ApplyTranslations(n, translations)
}
