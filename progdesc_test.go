package progdesc

// testProc is a configurable processor for tests. It implements
// FragmentProcessor, so it can stand in for any stage kind.
type testProc struct {
	classID    uint32
	key        []byte
	textures   []TextureAccess
	transforms []CoordTransform
}

func (p *testProc) ClassID() uint32 { return p.classID }

func (p *testProc) WriteKey(b *KeyBuilder) {
	if len(p.key) > 0 {
		b.AddBytes(p.key)
	}
}

func (p *testProc) TextureAccesses() []TextureAccess { return p.textures }

func (p *testProc) CoordTransforms() []CoordTransform { return p.transforms }

// simpleState returns a minimal valid pipeline state: one primitive
// processor, the given fragment processors, and a transfer processor.
func simpleState(fragments ...FragmentProcessor) *PipelineState {
	return &PipelineState{
		Primitive: &testProc{classID: 10, key: []byte{1, 2, 3, 4}},
		Fragments: fragments,
		Transfer:  &testProc{classID: 1},
	}
}
