package progdesc

import "testing"

func TestTransformKeySingle(t *testing.T) {
	tests := []struct {
		name          string
		ct            CoordTransform
		explicitLocal bool
		want          uint32
	}{
		{
			name: "local coords derive from position",
			ct:   CoordTransform{Source: CoordSourceLocal},
			want: positionCoordsFlag,
		},
		{
			name:          "explicit local coords suppress position flag",
			ct:            CoordTransform{Source: CoordSourceLocal},
			explicitLocal: true,
			want:          0,
		},
		{
			name: "device coords",
			ct:   CoordTransform{Source: CoordSourceDevice},
			want: deviceCoordsFlag,
		},
		{
			name: "device coords ignore explicit local",
			ct:   CoordTransform{Source: CoordSourceDevice},

			explicitLocal: true,
			want:          deviceCoordsFlag,
		},
		{
			name: "perspective matrix bit",
			ct:   CoordTransform{Source: CoordSourceLocal, Perspective: true},
			want: positionCoordsFlag | generalMatrixType,
		},
		{
			name: "precision field",
			ct:   CoordTransform{Source: CoordSourceDevice, Precision: PrecisionHigh},
			want: deviceCoordsFlag | uint32(PrecisionHigh)<<precisionShift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := &testProc{transforms: []CoordTransform{tt.ct}}
			got := transformKey(fp, tt.explicitLocal)
			if got != tt.want {
				t.Errorf("transformKey = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestTransformKeyShiftsPerIndex(t *testing.T) {
	fp := &testProc{transforms: []CoordTransform{
		{Source: CoordSourceLocal},                     // bits 0-4
		{Source: CoordSourceDevice, Perspective: true}, // bits 5-9
	}}

	want := positionCoordsFlag |
		(deviceCoordsFlag|generalMatrixType)<<transformKeyBits
	if got := transformKey(fp, false); got != uint32(want) {
		t.Errorf("transformKey = %#x, want %#x", got, want)
	}
}

func TestTransformKeyCapacity(t *testing.T) {
	// Zero-field transforms: local source with explicit local coords in
	// use contributes no bits, so the full capacity is reachable.
	zero := CoordTransform{Source: CoordSourceLocal}

	fp := &testProc{transforms: make([]CoordTransform, MaxCoordTransforms)}
	for i := range fp.transforms {
		fp.transforms[i] = zero
	}
	if got := transformKey(fp, true); got != 0 {
		t.Errorf("transformKey = %#x, want 0", got)
	}

	// One more transform than the 32-bit field can hold must fail
	// loudly, not silently truncate.
	fp.transforms = append(fp.transforms, zero)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for transform count over capacity")
		}
	}()
	transformKey(fp, true)
}

func TestMaxCoordTransforms(t *testing.T) {
	if MaxCoordTransforms != 6 {
		t.Errorf("MaxCoordTransforms = %d, want 6 (32-bit key, 5-bit fields)", MaxCoordTransforms)
	}
}
