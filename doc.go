// Package sculpt implements a brush evaluation kernel for 3D sculpting.
//
// # Overview
//
// sculpt computes, for a single brush stroke application, a per-vertex
// displacement across one of three interchangeable mesh storage
// representations, and commits it in parallel over disjoint vertex
// partitions ("nodes"). It is a CPU kernel: fully synchronous, allocation
// free in the hot path, and deterministic regardless of worker count.
//
// # Quick Start
//
//	import "github.com/gogpu/sculpt"
//
//	mesh, _ := sculpt.NewFacedMesh(positions, normals, faces)
//	nodes := mesh.DefaultNodes(64)
//
//	cache := &sculpt.StrokeCache{
//	    Strength:     1,
//	    Radius:       0.5,
//	    Location:     math32.Vec3(0, 0, 0),
//	    ViewNormal:   math32.Vec3(0, 0, 1),
//	    GrabDelta:    math32.Vec3(0.1, 0, 0),
//	    SculptNormal: math32.Vec3(0, 0, 1),
//	}
//
//	d := sculpt.NewDispatcher()
//	defer d.Close()
//
//	mesh.BeginStroke()
//	d.ThumbBrush(mesh, &sculpt.Brush{}, cache, nodes)
//
// # Architecture
//
// The kernel is organized as a pipeline of composable stages:
//   - Factor engine: visibility/mask fill, region clipping, front-face
//     weighting, radial falloff, hardness, automasking, texture sampling
//   - Distance sampler: spherical or projected distance over pre-stroke
//     positions
//   - Displacement synthesis: translation = offset * factor
//   - Committers: representation-specific write-back with symmetry
//     clipping and axis locks where the representation requires them
//   - Dispatcher: a fixed worker pool (internal/parallel) with one scratch
//     buffer per worker, one node per task
//
// # Mesh representations
//
// Three storage kinds implement the Mesh interface: FacedMesh (flat vertex
// arrays plus face connectivity), GridMesh (subdivision control-grid
// samples with a fixed per-grid sample count), and DynTopoMesh (an
// unordered, mutable vertex set with an original-state log).
//
// # Concurrency
//
// Nodes partition a mesh's vertices disjointly, so per-node work is
// race-free on direct writes. The stroke cache and brush parameters are
// read-only during dispatch. Dirty-node marks are collected in an atomic
// bitmap during the parallel phase and merged afterward.
package sculpt
