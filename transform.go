package progdesc

// The key for an individual coord transform is a matrix-type bit, a
// precision field, and two flag bits for the coordinate source.
const (
	matrixTypeKeyBits = 1

	precisionBits  = 2
	precisionShift = matrixTypeKeyBits

	positionCoordsFlag = 1 << (precisionShift + precisionBits)
	deviceCoordsFlag   = positionCoordsFlag << 1

	transformKeyBits = matrixTypeKeyBits + precisionBits + 2
)

// MaxCoordTransforms is the most coord transforms a single fragment
// processor may declare. The per-transform fields share one 32-bit word;
// callers must reject processors that declare more.
const MaxCoordTransforms = 32 / transformKeyBits

// Vertex code is specialized per matrix class; the numeric matrix values
// are uniforms and stay out of the key.
const (
	noPerspMatrixType uint32 = 0
	generalMatrixType uint32 = 1
)

// transformKey packs the processor's coord transforms into a 32-bit
// field, transform t occupying bits [transformKeyBits*t,
// transformKeyBits*(t+1)).
//
// A transform sourced from local coords is tagged position-derived only
// when the draw does not supply explicit local coords; with an explicit
// attribute in use, the source no longer changes generated code that
// way, so the flag is suppressed to keep the key canonical.
//
// Panics if the processor declares more than MaxCoordTransforms
// transforms, or if two transforms' fields overlap. Both indicate a bug
// in pipeline-state construction, not a data-dependent condition.
func transformKey(fp FragmentProcessor, useExplicitLocalCoords bool) uint32 {
	var totalKey uint32
	for t, ct := range fp.CoordTransforms() {
		if t >= MaxCoordTransforms {
			panic("progdesc: fragment processor declares more coord transforms than fit the transform key")
		}

		var key uint32
		if ct.Perspective {
			key |= generalMatrixType
		} else {
			key |= noPerspMatrixType
		}

		if ct.Source == CoordSourceLocal && !useExplicitLocalCoords {
			key |= positionCoordsFlag
		} else if ct.Source == CoordSourceDevice {
			key |= deviceCoordsFlag
		}

		key |= uint32(ct.Precision) << precisionShift

		key <<= uint(transformKeyBits * t)

		if totalKey&key != 0 {
			// Keys for each transform ought not to overlap.
			panic("progdesc: coord transform key fields overlap")
		}
		totalKey |= key
	}
	return totalKey
}
