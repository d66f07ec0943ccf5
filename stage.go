package progdesc

// ComponentFlags is a bitmask of logical color channels.
type ComponentFlags uint32

// Channel flags.
const (
	ComponentR ComponentFlags = 1 << iota
	ComponentG
	ComponentB
	ComponentA
)

// Channel combinations.
const (
	ComponentRGB  = ComponentR | ComponentG | ComponentB
	ComponentRGBA = ComponentRGB | ComponentA
)

// PixelConfig identifies the channel layout a texture presents when
// sampled. Unlike render-target formats this includes legacy single
// channel alpha configs, which is exactly what the swizzle analysis is
// about.
type PixelConfig uint8

// Pixel configs.
const (
	ConfigUnknown PixelConfig = iota

	// ConfigAlpha8 is an alpha-only texture. Per pipeline semantics it
	// broadcasts its single channel across all four logical channels
	// when sampled.
	ConfigAlpha8

	// ConfigRed8 is a red-only texture.
	ConfigRed8

	// ConfigRGB8 is an opaque three-channel texture.
	ConfigRGB8

	// ConfigRGBA8 is a four-channel texture.
	ConfigRGBA8

	// ConfigBGRA8 is a four-channel texture with swapped red and blue
	// storage order. Storage order does not change the logical channels
	// present.
	ConfigBGRA8
)

// Components returns the logical channels present in the config.
func (c PixelConfig) Components() ComponentFlags {
	switch c {
	case ConfigAlpha8:
		return ComponentA
	case ConfigRed8:
		return ComponentR
	case ConfigRGB8:
		return ComponentRGB
	case ConfigRGBA8, ConfigBGRA8:
		return ComponentRGBA
	default:
		return 0
	}
}

// TextureAccess describes one texture slot a processor samples.
type TextureAccess struct {
	// Config is the channel layout of the bound texture.
	Config PixelConfig

	// Swizzle is the set of channels the shader's swizzle reads.
	Swizzle ComponentFlags
}

// CoordSource identifies where a coord transform's input coordinates
// come from.
type CoordSource uint8

// Coord sources.
const (
	// CoordSourceLocal derives input coords from local geometry
	// coordinates.
	CoordSourceLocal CoordSource = iota

	// CoordSourceDevice derives input coords from device coordinates.
	CoordSourceDevice
)

// CoordTransform is a fragment processor's declaration of how input
// coordinates are derived and transformed before sampling. Only the
// properties that change generated code are declared here; the numeric
// matrix values are uniforms and stay out of the descriptor.
type CoordTransform struct {
	// Source is where the input coordinates come from.
	Source CoordSource

	// Precision is the floating-point precision the transform operates
	// in.
	Precision Precision

	// Perspective indicates a perspective-correcting matrix. Vertex code
	// is specialized per matrix class.
	Perspective bool
}

// Processor is one unit of a draw's processing chain. The concrete kinds
// are the primitive processor, fragment processors, and the transfer
// processor; all three share this surface so the meta-key layout stays
// uniform and self-describing.
type Processor interface {
	// ClassID returns a stable small integer unique to the concrete
	// processor type. Two processors of different types must never
	// report the same class ID.
	ClassID() uint32

	// WriteKey appends the processor's private key: an opaque encoding
	// of every configuration detail, beyond the meta key, that affects
	// the shader code the processor generates.
	WriteKey(b *KeyBuilder)

	// TextureAccesses returns the texture slots the processor samples,
	// in slot order. At most 16 slots are encodable per processor.
	TextureAccesses() []TextureAccess
}

// FragmentProcessor is a processor that additionally declares coord
// transforms. Only fragment stages transform coordinates.
type FragmentProcessor interface {
	Processor

	// CoordTransforms returns the processor's coord transforms in
	// declaration order. At most MaxCoordTransforms are encodable.
	CoordTransforms() []CoordTransform
}
