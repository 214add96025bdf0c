package blockmtl

// Face selects one side of a block cube.
type Face int

const (
	// FaceTop is the +Y face.
	FaceTop Face = iota
	// FaceBottom is the -Y face.
	FaceBottom
	// FaceLeft is the -X face.
	FaceLeft
	// FaceRight is the +X face.
	FaceRight
	// FaceFront is the +Z face.
	FaceFront
	// FaceBack is the -Z face.
	FaceBack
)

var faceNames = [...]string{"top", "bottom", "left", "right", "front", "back"}

// Faces returns all six faces in declaration order.
func Faces() []Face {
	return []Face{FaceTop, FaceBottom, FaceLeft, FaceRight, FaceFront, FaceBack}
}

// String returns the lower-case face name.
func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "invalid"
	}

	return faceNames[f]
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceTop && f <= FaceBack
}
