package sculpt

import "cogentcore.org/core/math32"

// maxSmoothIterations bounds how many relaxation iterations one smooth
// brush application performs at full strength.
const maxSmoothIterations = 4

// iterationStrengths splits a smooth strength in [0, 1] into full-strength
// iterations plus one fractional remainder, so higher strengths relax
// geometry further without overshooting in a single step. Strength outside
// [0, 1] is clamped.
func iterationStrengths(strength float32) []float32 {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	count := int(strength * maxSmoothIterations)
	last := maxSmoothIterations * (strength - float32(count)/maxSmoothIterations)
	out := make([]float32, count, count+1)
	for i := range out {
		out[i] = 1
	}
	return append(out, last)
}

// neighborAverager is implemented by meshes that can average each node
// vertex's neighbors' live positions.
type neighborAverager interface {
	neighborAveragePositions(n Node, out []math32.Vector3)
}

// SmoothBrush relaxes geometry toward the average position of each
// vertex's neighbors. The stroke strength selects how many relaxation
// iterations run (see iterationStrengths); each iteration reads the result
// of the previous one.
//
// Unlike the offset brushes, smoothing evaluates the factor pipeline over
// live positions rather than the pre-stroke snapshot. Faced and
// dynamic-topology adjacency crosses node boundaries, so for those meshes
// the averaged positions of every node are computed before any node
// commits; grid neighborhoods never leave their grids, so grid nodes run
// single-phase.
func (d *Dispatcher) SmoothBrush(m Mesh, b *Brush, c *StrokeCache, nodes []Node) {
	avg, ok := m.(neighborAverager)
	if !ok || len(nodes) == 0 {
		return
	}
	Logger().Debug("sculpt: smooth brush", "nodes", len(nodes), "strength", c.Strength)

	if grids, isGrids := m.(*GridMesh); isGrids {
		d.smoothGrids(grids, b, c, nodes)
		return
	}
	_, faced := m.(*FacedMesh)
	d.smoothTwoPhase(m, avg, b, c, nodes, !faced)
}

// smoothGrids runs the smooth brush per grid node. Node elements are whole
// grids and the 4-neighborhood never crosses a grid boundary, so averaging
// within a node only reads positions the same node owns.
func (d *Dispatcher) smoothGrids(m *GridMesh, b *Brush, c *StrokeCache, nodes []Node) {
	for _, strength := range iterationStrengths(c.Strength) {
		s := strength
		d.dispatch(m, nodes, func(tls *ScratchBuffers, i int) {
			n := nodes[i]
			count := m.NodeVertCount(n)
			if count == 0 {
				return
			}
			newPositions := tls.NewPositions(count)
			m.neighborAveragePositions(n, newPositions)
			smoothApplyNode(m, b, c, s, n, tls, newPositions, true)
		})
	}
}

// smoothTwoPhase runs the smooth brush in two parallel phases per
// iteration: averaged positions for all nodes land in one shared
// per-node-offset array first, then every node evaluates factors and
// commits. Adjacency crossing node boundaries must not observe this
// iteration's commits.
func (d *Dispatcher) smoothTwoPhase(m Mesh, avg neighborAverager, b *Brush, c *StrokeCache, nodes []Node, clipLock bool) {
	offsets := make([]int, len(nodes)+1)
	for i, n := range nodes {
		offsets[i+1] = offsets[i] + m.NodeVertCount(n)
	}
	newPositions := make([]math32.Vector3, offsets[len(nodes)])

	for _, strength := range iterationStrengths(c.Strength) {
		s := strength
		d.pool.Run(len(nodes), func(_, i int) {
			avg.neighborAveragePositions(nodes[i], newPositions[offsets[i]:offsets[i+1]])
		})
		d.dispatch(m, nodes, func(tls *ScratchBuffers, i int) {
			smoothApplyNode(m, b, c, s, nodes[i], tls, newPositions[offsets[i]:offsets[i+1]], clipLock)
		})
	}
}

// smoothApplyNode evaluates the factor pipeline over live positions,
// scales it by the iteration strength, and commits translations moving
// each vertex toward its averaged target position.
func smoothApplyNode(m Mesh, b *Brush, c *StrokeCache, strength float32, n Node, tls *ScratchBuffers, newPositions []math32.Vector3, clipLock bool) {
	count := len(newPositions)
	if count == 0 {
		return
	}

	positions := tls.Positions(count)
	m.Positions(n, positions)

	factors := tls.Factors(count)
	m.FillHideMaskFactors(n, factors)
	FilterRegionClip(c, positions, factors)
	if b.FrontFace {
		normals := tls.Normals(count)
		m.Normals(n, normals)
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
	ScaleFactors(factors, strength)
	if b.Texture != nil {
		CalcTextureFactors(b.Texture, positions, factors)
	}

	translations := tls.Translations(count)
	TranslationsFromNewPositions(newPositions, positions, factors, translations)
	if clipLock {
		ClipAndLockTranslations(c, positions, translations)
	}
	m.ApplyTranslations(n, translations)
}
