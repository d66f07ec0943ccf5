package progdesc

import "github.com/gogpu/gputypes"

// Byte offsets of the header fields within the header zone. Bytes 5-7
// are padding and stay zero.
const (
	headerPathRenderingOffset  = 0
	headerDstReadKeyOffset     = 1
	headerFragPosKeyOffset     = 2
	headerColorStagesOffset    = 3
	headerCoverageStagesOffset = 4
)

// Header is the decoded fixed-layout header zone of a descriptor.
type Header struct {
	// UsePathRendering indicates the program is generated for a
	// hardware path rendering draw.
	UsePathRendering bool

	// DstReadKey encodes how the shader reads the destination surface.
	// Zero means the destination is not read.
	DstReadKey uint8

	// FragPosKey encodes how the shader derives the fragment position.
	// Zero means the fragment position is not read.
	FragPosKey uint8

	// ColorStageCount is the number of color-contributing fragment
	// stages.
	ColorStageCount uint8

	// CoverageStageCount is the number of coverage-contributing
	// fragment stages.
	CoverageStageCount uint8
}

// Header decodes the descriptor's header zone. Panics if the descriptor
// is too short to contain one (i.e. was not produced by Build).
func (d Descriptor) Header() Header {
	if len(d.key) < ProcessorKeysOffset {
		panic("progdesc: descriptor has no header zone")
	}
	h := d.key[HeaderOffset : HeaderOffset+HeaderSize]
	return Header{
		UsePathRendering:   h[headerPathRenderingOffset] != 0,
		DstReadKey:         h[headerDstReadKeyOffset],
		FragPosKey:         h[headerFragPosKeyOffset],
		ColorStageCount:    h[headerColorStagesOffset],
		CoverageStageCount: h[headerCoverageStagesOffset],
	}
}

// Destination-read key bits. The exact numeric scheme is not part of the
// descriptor contract; it only has to be nonzero whenever a destination
// read occurs and stable for equal (caps, copy texture) pairs.
const (
	dstReadUsesCopyBit    = 1 << 0
	dstReadSwapRBBit      = 1 << 1
	dstReadTopLeftBit     = 1 << 2
	dstReadInShaderKeyVal = 1 << 3
)

// keyForDstRead encodes how the shader will read the destination. With
// no copy texture bound the shader reads the destination in place,
// which the caller must have verified the hardware supports.
func keyForDstRead(copy *DstCopyTexture, caps *Caps) uint8 {
	if copy == nil {
		return dstReadInShaderKeyVal
	}
	key := uint8(dstReadUsesCopyBit)
	if copy.Format == gputypes.TextureFormatBGRA8Unorm {
		// Sampling the copy yields swapped r/b relative to the logical
		// destination channels.
		key |= dstReadSwapRBBit
	}
	if copy.OriginTopLeft {
		key |= dstReadTopLeftBit
	}
	return key
}

// Fragment-position keys, one per render-target origin. Always nonzero.
const (
	fragPosTopLeftKeyVal    = 1
	fragPosBottomLeftKeyVal = 2
)

// keyForFragmentPosition encodes how the shader derives the fragment's
// window position, which differs by render-target origin.
func keyForFragmentPosition(rt RenderTarget) uint8 {
	if rt.OriginTopLeft {
		return fragPosTopLeftKeyVal
	}
	return fragPosBottomLeftKeyVal
}
