package topology

// LandmarkCount is the number of body landmarks in a full-body pose estimate.
// Indices follow the standard 33-point full-body convention: face (0-10),
// arms and hands (11-22), torso and legs (23-32).
const LandmarkCount = 33

// Named landmark indices, in estimator output order.
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
)

// BoneClass groups bones by the visual weight they should carry on screen.
// Fine bones (face contour, finger segments) render thinner than the large
// structural bones of the torso and limbs.
type BoneClass int

const (
	// ClassStandard marks torso and limb bones.
	ClassStandard BoneClass = iota
	// ClassFine marks face and hand-digit bones.
	ClassFine
)

// Connection is an undirected pair of landmark indices forming one bone.
// A is always the lower index.
type Connection struct {
	A, B  int
	Class BoneClass
}

// Topology is the fixed wiring of a skeleton: how many joints it has and
// which pairs of joints are connected by bones. It is immutable after
// construction; all consumers share one instance.
type Topology interface {
	// JointCount returns the number of joints (equal to LandmarkCount for the
	// default full-body topology).
	JointCount() int

	// Connections returns the bone table. Callers must not modify the
	// returned slice.
	Connections() []Connection
}

type topology struct {
	jointCount  int
	connections []Connection
}

var _ Topology = &topology{}

// fullBodyConnections is the standard 35-bone wiring over the 33 landmarks.
// Face and hand-digit segments are classed fine; everything else standard.
var fullBodyConnections = []Connection{
	// Face contour: nose through the eye landmarks to the ears.
	{A: 0, B: 1, Class: ClassFine},
	{A: 1, B: 2, Class: ClassFine},
	{A: 2, B: 3, Class: ClassFine},
	{A: 3, B: 7, Class: ClassFine},
	{A: 0, B: 4, Class: ClassFine},
	{A: 4, B: 5, Class: ClassFine},
	{A: 5, B: 6, Class: ClassFine},
	{A: 6, B: 8, Class: ClassFine},
	{A: 9, B: 10, Class: ClassFine},

	// Shoulders, arms.
	{A: 11, B: 12, Class: ClassStandard},
	{A: 11, B: 13, Class: ClassStandard},
	{A: 13, B: 15, Class: ClassStandard},

	// Left hand digits.
	{A: 15, B: 17, Class: ClassFine},
	{A: 15, B: 19, Class: ClassFine},
	{A: 15, B: 21, Class: ClassFine},
	{A: 17, B: 19, Class: ClassFine},

	{A: 12, B: 14, Class: ClassStandard},
	{A: 14, B: 16, Class: ClassStandard},

	// Right hand digits.
	{A: 16, B: 18, Class: ClassFine},
	{A: 16, B: 20, Class: ClassFine},
	{A: 16, B: 22, Class: ClassFine},
	{A: 18, B: 20, Class: ClassFine},

	// Torso.
	{A: 11, B: 23, Class: ClassStandard},
	{A: 12, B: 24, Class: ClassStandard},
	{A: 23, B: 24, Class: ClassStandard},

	// Legs and feet.
	{A: 23, B: 25, Class: ClassStandard},
	{A: 24, B: 26, Class: ClassStandard},
	{A: 25, B: 27, Class: ClassStandard},
	{A: 26, B: 28, Class: ClassStandard},
	{A: 27, B: 29, Class: ClassStandard},
	{A: 28, B: 30, Class: ClassStandard},
	{A: 29, B: 31, Class: ClassStandard},
	{A: 30, B: 32, Class: ClassStandard},
	{A: 27, B: 31, Class: ClassStandard},
	{A: 28, B: 32, Class: ClassStandard},
}

var defaultTopology = &topology{
	jointCount:  LandmarkCount,
	connections: fullBodyConnections,
}

func init() {
	// A malformed bone table would silently corrupt every downstream
	// consumer, so it is a fatal initialization error.
	seen := make(map[[2]int]bool, len(fullBodyConnections))
	for _, c := range fullBodyConnections {
		if c.A < 0 || c.A >= LandmarkCount || c.B < 0 || c.B >= LandmarkCount {
			panic("topology: connection index out of range")
		}
		if c.A >= c.B {
			panic("topology: connection endpoints must be ordered A < B")
		}
		key := [2]int{c.A, c.B}
		if seen[key] {
			panic("topology: duplicate connection")
		}
		seen[key] = true
	}
}

// Default returns the shared full-body topology: 33 joints wired by 35 bones.
//
// Returns:
//   - Topology: the immutable default skeleton wiring
func Default() Topology {
	return defaultTopology
}

// JointClass reports the visual class of a single joint. Face landmarks
// (0-10) and hand-digit landmarks (17-22) are fine; all others standard.
//
// Parameters:
//   - index: landmark index in [0, LandmarkCount)
//
// Returns:
//   - BoneClass: ClassFine for face and hand-digit joints, ClassStandard otherwise
func JointClass(index int) BoneClass {
	if index <= 10 || (index >= 17 && index <= 22) {
		return ClassFine
	}
	return ClassStandard
}

func (t *topology) JointCount() int {
	return t.jointCount
}

func (t *topology) Connections() []Connection {
	return t.connections
}
