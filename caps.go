package progdesc

// Precision is a shader floating-point precision level.
type Precision uint8

// Precision levels, lowest to highest.
const (
	PrecisionLow Precision = iota
	PrecisionMedium
	PrecisionHigh

	precisionCount
)

// Every precision level must be encodable in the transform key's
// precision field. Fails to compile if the enum outgrows the field.
const _ = uint32(1<<precisionBits) - uint32(precisionCount)

// Caps is an immutable snapshot of the GPU capabilities that influence
// generated shader code. Capability detection itself happens elsewhere;
// descriptor construction only reads the snapshot.
type Caps struct {
	// TextureSwizzleSupport indicates the sampling hardware can remap
	// texture channels itself. When set, channel swizzles never reach
	// shader code and are excluded from descriptors.
	TextureSwizzleSupport bool

	// TextureRedSupport indicates alpha-only textures are stored as
	// red-only, so shader reads of their alpha channel must be rewritten
	// to read red.
	TextureRedSupport bool

	// PathRenderingSupport indicates hardware path rendering is
	// available for path draw kinds.
	PathRenderingSupport bool

	// DstReadInShaderSupport indicates the shader can read the
	// destination surface directly, without a destination copy texture.
	DstReadInShaderSupport bool
}
