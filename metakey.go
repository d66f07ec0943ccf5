package progdesc

import "math"

// metaKeyInvalidMask flags any bits above the 16 allotted to each
// meta-key field.
const metaKeyInvalidMask = ^uint32(math.MaxUint16)

// writeMetaKey appends a processor's meta key: two words of bookkeeping
// required because shader code may depend on properties the processor
// does not put in its own private key (e.g. the pixel configs of the
// textures it samples). It also records the class ID, which must differ
// for every concrete processor type, and the private-key length just
// written for this processor.
//
// Every processor kind shares this function even though only fragment
// processors have a nonzero transform key; uniformity keeps the key
// layout self-describing.
//
// Returns false if any 16-bit field is over budget, in which case the
// caller must discard the entire in-progress key.
func writeMetaKey(proc Processor, caps *Caps, transformKey uint32, privateKeySize int, b *KeyBuilder) bool {
	texKey := textureKey(proc, caps)
	classID := proc.ClassID()

	if (texKey|transformKey|classID)&metaKeyInvalidMask != 0 {
		return false
	}
	if privateKeySize > math.MaxUint16 {
		return false
	}

	b.Add32(texKey<<16 | transformKey)
	b.Add32(classID<<16 | uint32(privateKeySize))
	return true
}
