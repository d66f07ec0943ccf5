// Package progdesc builds shader program descriptors for a GPU draw
// pipeline.
//
// A descriptor is a compact, canonical byte key that uniquely identifies
// the shader program generated for a fully-resolved draw configuration:
// an ordered chain of processors (primitive, fragment stages, transfer)
// plus pipeline-wide flags. Two draws that would generate identical
// shader code produce byte-identical descriptors, so a program cache can
// reuse the compiled program; two draws whose shader code differs never
// produce equal descriptors.
//
// Descriptors canonicalize away configuration differences that provably
// do not change generated code. For example, a texture swizzle that the
// sampling hardware performs itself is excluded from the key, because it
// never reaches the shader.
//
// # Key layout
//
// A descriptor starts with a fixed 8-byte header zone, followed by one
// segment per processor in pipeline order. Each segment is the
// processor's private key (its own opaque configuration bytes, padded to
// a 32-bit boundary) followed by a two-word meta key carrying the
// processor's class identity, texture-swizzle bits, coord-transform bits,
// and private-key length. The header is populated last, after all
// segments, and is fully zeroed first so padding never introduces
// nondeterminism.
//
// # Usage
//
//	desc, err := progdesc.Build(state, flags, progdesc.DrawTriangles, caps)
//	if err != nil {
//		// This draw cannot be keyed under the 16-bit field budget;
//		// skip the program cache for it. Retrying cannot help.
//	}
//	prog, ok := cache.Get(desc)
//
// Build is a pure function of its inputs and is safe to call from
// multiple goroutines, provided the pipeline state and capability
// snapshot passed in are not mutated during the call.
package progdesc
