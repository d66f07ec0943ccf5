package progdesc

// Build produces the descriptor for one draw: the canonical cache key of
// the shader program the draw's processor chain generates.
//
// Processor segments appear in strict pipeline order (primitive, then
// fragment processors in declaration order, then transfer), each segment
// being the processor's private key followed by its meta key. The fixed
// header zone at the start is populated last.
//
// Build owns a fresh key buffer for the duration of the call and is safe
// to call concurrently as long as state and caps are not mutated during
// the call. On ErrMetaKeyOverflow the in-progress key is discarded
// entirely; no partial key is ever observable.
//
// Internal-consistency violations in the supplied pipeline state (a
// destination read with nothing to read from, hardware path rendering
// with an active primitive processor, coord transform overflow) panic:
// they indicate a bug in the state's construction, not a condition Build
// can recover from.
func Build(state *PipelineState, flags Flags, kind DrawKind, caps *Caps) (Descriptor, error) {
	// Fields that do not affect program generation must be set to a
	// canonical value to avoid duplicate programs under different keys;
	// that canonicalization happens in the encoders below.

	// Reserve the header zone. It is populated after the processor
	// segments, because the backing slice may relocate on append.
	key := make([]byte, ProcessorKeysOffset, 64)
	b := &KeyBuilder{key: &key}

	if state.Primitive != nil {
		start := b.Size()
		state.Primitive.WriteKey(b)
		if !writeMetaKey(state.Primitive, caps, 0, b.Size()-start, b) {
			return Descriptor{}, ErrMetaKeyOverflow
		}
	}

	for _, fp := range state.Fragments {
		start := b.Size()
		fp.WriteKey(b)
		tk := transformKey(fp, flags.ExplicitLocalCoords)
		if !writeMetaKey(fp, caps, tk, b.Size()-start, b) {
			return Descriptor{}, ErrMetaKeyOverflow
		}
	}

	if state.Transfer == nil {
		panic("progdesc: pipeline state has no transfer processor")
	}
	start := b.Size()
	state.Transfer.WriteKey(b)
	if !writeMetaKey(state.Transfer, caps, 0, b.Size()-start, b) {
		return Descriptor{}, ErrMetaKeyOverflow
	}

	// No appends below this line: header is a view into the key slice.
	header := key[HeaderOffset : HeaderOffset+HeaderSize]
	for i := range header {
		header[i] = 0
	}

	if caps.PathRenderingSupport && kind.IsPathRendering() {
		if state.Primitive != nil {
			panic("progdesc: hardware path rendering draw with an active primitive processor")
		}
		header[headerPathRenderingOffset] = 1
	}

	if flags.ReadsDst {
		if state.DstCopy == nil && !caps.DstReadInShaderSupport {
			panic("progdesc: destination read without a copy texture or in-shader read support")
		}
		dstReadKey := keyForDstRead(state.DstCopy, caps)
		if dstReadKey == 0 {
			panic("progdesc: zero dst-read key for a destination-reading draw")
		}
		header[headerDstReadKeyOffset] = dstReadKey
	}

	if flags.ReadsFragPosition {
		fragPosKey := keyForFragmentPosition(state.RenderTarget)
		if fragPosKey == 0 {
			panic("progdesc: zero fragment-position key for a position-reading draw")
		}
		header[headerFragPosKeyOffset] = fragPosKey
	}

	header[headerColorStagesOffset] = uint8(state.ColorStageCount)
	header[headerCoverageStagesOffset] = uint8(state.CoverageStageCount)

	return Descriptor{key: key[:len(key):len(key)]}, nil
}
