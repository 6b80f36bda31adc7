// Package water simulates an FFT ocean surface (Tessendorf) and exposes it as
// a vertex grid ready for upload.
//
// An Ocean is not safe for concurrent use. Update must be called from one
// goroutine; the tables built by New are never modified afterwards.
package water

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/oceanwaves/internal/engine/mesh"
	"github.com/Faultbox/oceanwaves/internal/engine/water/normals"
	"github.com/Faultbox/oceanwaves/internal/engine/water/spectrum"
	"github.com/Faultbox/oceanwaves/internal/engine/water/transform"
)

// Ocean owns the spectral tables, transform plan, scratch buffers and the
// heightfield mesh of one simulation.
type Ocean struct {
	params Params
	log    *zap.Logger

	h0    []complex128
	omega []float64

	evolver  *spectrum.Evolver
	spectra  *spectrum.Fields
	engine   *transform.Engine
	normals  normals.Strategy
	slopes   bool
	rest     []mesh.Vertex
	vertices []mesh.Vertex
	indices  []uint32
	time     float64
}

// New validates p and builds every table and buffer the simulation needs.
// A nil logger disables logging.
func New(p Params, log *zap.Logger) (*Ocean, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	strategy, err := normals.New(p.NormalMode)
	if err != nil {
		return nil, err
	}

	engine, err := transform.NewEngine(p.FFTDim)
	if err != nil {
		return nil, fmt.Errorf("building transform plan: %w", err)
	}

	o := &Ocean{
		params:  p,
		log:     log,
		engine:  engine,
		normals: strategy,
		slopes:  strategy.NeedsSlopes(),
		spectra: spectrum.NewFields(p.FFTDim),
		evolver: spectrum.NewEvolver(p.FFTDim, p.PatchLength, p.WavePeriod),
	}
	o.evolver.Mirrored = p.MirroredConjugate

	o.rest, _ = mesh.BuildVertices(p.HeightmapDim, p.VertexStride)
	o.vertices = make([]mesh.Vertex, len(o.rest))
	copy(o.vertices, o.rest)
	o.indices, _ = mesh.BuildIndices(p.HeightmapDim)

	o.omega = spectrum.BuildDispersion(p.FFTDim, p.PatchLength, p.Gravity)
	o.h0 = spectrum.BuildInitial(p.FFTDim, p.PatchLength, p.phillips(), spectrum.NewRand(p.Seed))

	log.Info("ocean initialized",
		zap.Int("fftDim", p.FFTDim),
		zap.Int("heightmapDim", p.HeightmapDim),
		zap.Int("vertices", len(o.vertices)),
		zap.Int("indices", len(o.indices)),
		zap.String("normals", string(p.NormalMode)),
	)
	log.Debug("ocean parameters", zap.Any("params", p))

	return o, nil
}

// Update advances the surface to elapsed seconds and rewrites the vertices.
func (o *Ocean) Update(elapsed float64) {
	o.time = elapsed
	o.evolver.Evolve(o.spectra, o.h0, o.omega, elapsed, o.slopes)
	fields := o.engine.Transform(o.spectra, o.slopes)

	dim := o.params.HeightmapDim
	chop := o.params.Choppiness
	for z := range dim {
		for x := range dim {
			// The frequency grid is at least twice the mesh resolution, so
			// the mesh takes every other sample.
			fz, fx := 2*z, 2*x
			i := fields.At(fz, fx)
			v := &o.vertices[z*dim+x]

			base := o.rest[z*dim+x].Position
			if o.params.AccumulateChop {
				base = v.Position
			}
			v.Position[0] = base[0] + float32(chop*fields.Dx[i])
			v.Position[1] = float32(fields.Height[i])
			v.Position[2] = base[2] + float32(chop*fields.Dz[i])
			v.Normal = o.normals.Normal(fields, fz, fx)
		}
	}
}

// Params returns the parameters the ocean was built with.
func (o *Ocean) Params() Params {
	return o.params
}

// Time returns the elapsed time of the last Update.
func (o *Ocean) Time() float64 {
	return o.time
}

// Vertices returns the mesh buffer. It is rewritten by every Update and must
// not be modified by the caller.
func (o *Ocean) Vertices() []mesh.Vertex {
	return o.vertices
}

// Indices returns the triangle strip index list. It never changes.
func (o *Ocean) Indices() []uint32 {
	return o.indices
}

// VertexCount returns HeightmapDim squared.
func (o *Ocean) VertexCount() int {
	return len(o.vertices)
}

// IndexCount returns the length of the strip index list.
func (o *Ocean) IndexCount() int {
	return len(o.indices)
}

// Heights returns the full-resolution spatial height field of the last
// Update, FFTDim x FFTDim row-major. Read only.
func (o *Ocean) Heights() []float64 {
	return o.engine.Fields().Height
}

// InitialSpectrum returns h0(k). Read only.
func (o *Ocean) InitialSpectrum() []complex128 {
	return o.h0
}

// Dispersion returns omega(k). Read only.
func (o *Ocean) Dispersion() []float64 {
	return o.omega
}
