package classify

import (
	"strings"

	"github.com/dshills/stemtutor/pkg/types"
)

// subjectKeywords maps each subject to the terms that signal it. Matching is
// substring containment over the lowercased question, so a keyword inside a
// longer word still counts ("newtonian" matches "newton").
var subjectKeywords = map[types.Subject][]string{
	types.SubjectPhysics: {
		"force", "motion", "energy", "newton", "gravity", "mass", "velocity",
		"acceleration", "momentum", "friction", "wave", "light", "electricity",
		"magnetism", "pressure", "work", "power", "thermodynamics",
	},
	types.SubjectChemistry: {
		"atom", "molecule", "chemical", "reaction", "bond", "element",
		"compound", "acid", "base", "periodic", "ion", "electron", "proton",
		"neutron", "covalent", "ionic", "oxidation", "reduction", "mole",
		"stoichiometry", "ph", "catalyst",
	},
	types.SubjectBiology: {
		"cell", "dna", "gene", "evolution", "organism", "photosynthesis",
		"respiration", "protein", "mitosis", "meiosis", "enzyme", "ecosystem",
		"species", "bacteria", "virus", "tissue", "organ", "genetics",
	},
	types.SubjectMath: {
		"equation", "algebra", "geometry", "calculus", "derivative", "integral",
		"function", "graph", "polynomial", "trigonometry", "sine", "cosine",
		"pythagorean", "quadratic", "linear", "slope", "angle", "triangle",
	},
}

// Subject scores every subject by how many of its keywords occur in the
// question and returns the best one. Returns ("", false) when no keyword of
// any subject is present. Ties go to the first-declared subject.
func Subject(question string) (types.Subject, bool) {
	lower := strings.ToLower(question)

	var best types.Subject
	bestScore := 0
	for _, subject := range types.AllSubjects {
		score := 0
		for _, keyword := range subjectKeywords[subject] {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = subject
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return best, true
}

// Keywords returns the keyword list for a subject. Used by the knowledge
// catalog tests to keep the two vocabularies aligned.
func Keywords(subject types.Subject) []string {
	return subjectKeywords[subject]
}
