package types

// Subject identifies one of the supported STEM subjects.
type Subject string

// Supported subjects. AllSubjects preserves the declaration order, which is
// the deterministic tie-break order for subject classification.
const (
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectBiology   Subject = "biology"
	SubjectMath      Subject = "math"
)

// AllSubjects lists every subject in declaration order.
var AllSubjects = []Subject{
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectMath,
}

// Valid reports whether s is one of the supported subjects.
func (s Subject) Valid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectBiology, SubjectMath:
		return true
	}
	return false
}

// String returns the subject name.
func (s Subject) String() string {
	return string(s)
}
