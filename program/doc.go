// Package program generates and compiles the shader programs that
// descriptors name.
//
// A draw's processor chain is assembled into a single WGSL module: each
// processor contributes a stage function (its own WGSL if it implements
// [Source], a pass-through otherwise) and the fragment entry point
// chains them in pipeline order. The module is compiled to SPIR-V with
// github.com/gogpu/naga.
//
// Program generation is deterministic over the same inputs that
// [progdesc.Build] keys, which is what makes descriptor equality a safe
// cache criterion.
package program
