package progdesc

import "github.com/gogpu/gputypes"

// DrawKind is the kind of draw being keyed.
type DrawKind uint8

// Draw kinds.
const (
	DrawPoints DrawKind = iota
	DrawLines
	DrawTriangles

	// DrawPath and DrawPaths are hardware path rendering draws. They
	// bypass the primitive processor entirely.
	DrawPath
	DrawPaths
)

// IsPathRendering reports whether the draw kind uses hardware path
// rendering.
func (k DrawKind) IsPathRendering() bool {
	return k == DrawPath || k == DrawPaths
}

// RenderTarget identifies the surface being rendered to, to the extent
// it influences generated shader code.
type RenderTarget struct {
	// Format is the target's texture format.
	Format gputypes.TextureFormat

	// OriginTopLeft indicates the target's coordinate origin is the top
	// left corner rather than the bottom left. Fragment-position reads
	// generate different code per origin.
	OriginTopLeft bool
}

// DstCopyTexture is a copy of the destination surface bound for shader
// reads when the hardware cannot read the destination in place.
type DstCopyTexture struct {
	// Format is the copy texture's format.
	Format gputypes.TextureFormat

	// OriginTopLeft indicates the copy's coordinate origin.
	OriginTopLeft bool
}

// PipelineState is a read-only view of a fully-resolved draw
// configuration. It is expected to be an immutable snapshot for the
// duration of a Build call.
type PipelineState struct {
	// Primitive is the primitive processor. Nil for hardware path
	// rendering draws, which have no primitive stage.
	Primitive Processor

	// Fragments are the active fragment processors in pipeline order.
	Fragments []FragmentProcessor

	// Transfer is the transfer processor that blends the final color
	// into the destination. Always present.
	Transfer Processor

	// RenderTarget is the surface being rendered to.
	RenderTarget RenderTarget

	// DstCopy is the destination copy texture, or nil if none is bound.
	DstCopy *DstCopyTexture

	// ColorStageCount is the number of fragment processors contributing
	// to the output color.
	ColorStageCount int

	// CoverageStageCount is the number of fragment processors
	// contributing to coverage.
	CoverageStageCount int
}

// Flags are pipeline-wide properties that affect generated shader code
// independently of any single processor.
type Flags struct {
	// ExplicitLocalCoords indicates the draw supplies local coordinates
	// as an explicit vertex attribute. When set, local-coord transforms
	// are not derived from vertex position, which changes how their
	// source is keyed.
	ExplicitLocalCoords bool

	// ReadsDst indicates the transfer processor reads the destination
	// surface.
	ReadsDst bool

	// ReadsFragPosition indicates some stage reads the fragment's
	// window position.
	ReadsFragPosition bool
}
