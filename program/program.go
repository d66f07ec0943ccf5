package program

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/progdesc"
)

// Program is a compiled shader program together with the descriptor
// that names it in the cache.
type Program struct {
	// Desc is the descriptor the program was generated for.
	Desc progdesc.Descriptor

	// WGSL is the assembled shader source.
	WGSL string

	// SPIRV is the compiled module as SPIR-V words.
	SPIRV []uint32
}

// Source is implemented by processors that contribute their own WGSL to
// the generated program.
type Source interface {
	// StageWGSL returns the body of the processor's stage function. The
	// body receives the running color as `c: vec4<f32>` and must return
	// a vec4<f32>.
	StageWGSL() string
}

// New generates and compiles the program for a draw. The descriptor
// must have been built from the same state, flags, and kind.
func New(desc progdesc.Descriptor, state *progdesc.PipelineState, flags progdesc.Flags, kind progdesc.DrawKind) (*Program, error) {
	wgsl := Generate(state, flags, kind)
	spirv, err := CompileWGSL(wgsl)
	if err != nil {
		return nil, fmt.Errorf("program: compile failed: %w", err)
	}
	return &Program{Desc: desc, WGSL: wgsl, SPIRV: spirv}, nil
}

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("program: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
