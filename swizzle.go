package progdesc

// SwizzleRequiresRemap reports whether a shader swizzle must be emulated
// in shader code for a texture with the given channel layout.
//
// When the hardware supports texture swizzling the remap happens on the
// sampling path, never in the shader, so it cannot affect generated code
// and must be excluded from descriptors. Otherwise a remap is needed
// only for alpha-only textures: either the alpha read must be rewritten
// to a red read (alpha-only stored as red-only), or reads of r/g/b must
// be synthesized from the broadcast alpha channel.
//
// Pure function; configMask is the channel layout of the texture and
// swizzleMask the channels the shader swizzle reads.
func SwizzleRequiresRemap(caps *Caps, configMask, swizzleMask ComponentFlags) bool {
	if caps.TextureSwizzleSupport {
		return false
	}
	if configMask == ComponentA {
		if caps.TextureRedSupport && swizzleMask&ComponentA != 0 {
			return true
		}
		if swizzleMask&ComponentRGB != 0 {
			return true
		}
	}
	return false
}

// textureKey accumulates the per-slot remap decisions for one processor
// into a bitmask: bit t is set iff slot t needs an in-shader remap.
// A processor declaring more than 16 slots overflows the 16-bit meta-key
// field and fails the budget check there.
func textureKey(proc Processor, caps *Caps) uint32 {
	var key uint32
	for t, access := range proc.TextureAccesses() {
		if SwizzleRequiresRemap(caps, access.Config.Components(), access.Swizzle) {
			key |= 1 << uint(t)
		}
	}
	return key
}
