package knowledge

import "github.com/dshills/stemtutor/pkg/types"

// subjectSuggestions lists topics worth asking about, per subject. Shown
// when no strategy finds a match.
var subjectSuggestions = map[types.Subject]string{
	types.SubjectPhysics: `- Newton's laws of motion
- Kinetic and potential energy
- Gravity and weight
- Force, mass, and acceleration
- Work and power`,
	types.SubjectChemistry: `- Atomic structure
- Chemical bonding (ionic, covalent)
- pH and acids/bases
- Chemical reactions
- The periodic table`,
	types.SubjectBiology: `- Photosynthesis
- Cellular respiration
- DNA structure
- Mitosis and meiosis
- Cell structure`,
	types.SubjectMath: `- Quadratic equations
- Pythagorean theorem
- Linear functions
- Trigonometry basics
- Algebra fundamentals`,
}

// genericSuggestions is the cross-subject list used when no subject was
// detected for the question.
const genericSuggestions = `- Physics: motion, energy, forces
- Chemistry: atoms, bonding, reactions
- Biology: cells, DNA, photosynthesis
- Math: algebra, geometry, calculus`

// Suggestions returns topic suggestions for a subject, or the generic
// cross-subject list when the subject is empty or unknown.
func Suggestions(subject types.Subject) string {
	if s, ok := subjectSuggestions[subject]; ok {
		return s
	}
	return genericSuggestions
}
