package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/stemtutor/pkg/types"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     types.Subject
		detected bool
	}{
		{
			name:     "physics by force and acceleration",
			question: "What force causes acceleration?",
			want:     types.SubjectPhysics,
			detected: true,
		},
		{
			name:     "chemistry by bonding terms",
			question: "How does an atom form a covalent bond?",
			want:     types.SubjectChemistry,
			detected: true,
		},
		{
			name:     "biology by cell terms",
			question: "Explain dna and mitosis in a cell",
			want:     types.SubjectBiology,
			detected: true,
		},
		{
			name:     "math by equation terms",
			question: "Solve the quadratic equation",
			want:     types.SubjectMath,
			detected: true,
		},
		{
			name:     "case insensitive",
			question: "WHAT IS GRAVITY?",
			want:     types.SubjectPhysics,
			detected: true,
		},
		{
			name:     "substring containment counts",
			question: "newtonian mechanics",
			want:     types.SubjectPhysics,
			detected: true,
		},
		{
			name:     "no keywords",
			question: "xyzzy plugh",
			detected: false,
		},
		{
			name:     "empty question",
			question: "",
			detected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, detected := Subject(tt.question)
			assert.Equal(t, tt.detected, detected)
			if tt.detected {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestSubject_TieGoesToFirstDeclared(t *testing.T) {
	// One physics keyword and one chemistry keyword score 1 each; physics
	// is declared first so it must win every run.
	for i := 0; i < 20; i++ {
		got, detected := Subject("ion wave")
		assert.True(t, detected)
		assert.Equal(t, types.SubjectPhysics, got)
	}
}

func TestKeywords(t *testing.T) {
	for _, subject := range types.AllSubjects {
		assert.NotEmpty(t, Keywords(subject), "subject %s has no keywords", subject)
	}
	assert.Contains(t, Keywords(types.SubjectPhysics), "newton")
}

func TestLawNumber(t *testing.T) {
	tests := []struct {
		question string
		want     int
		found    bool
	}{
		{"newton's first law", 1, true},
		{"Newton's 1st law", 1, true},
		{"law number one", 1, true},
		{"what is the second law", 2, true},
		{"2nd law of motion", 2, true},
		{"newton's third law", 3, true},
		{"law 3", 3, true},
		{"NEWTON'S SECOND LAW", 2, true},
		{"newton's laws", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			got, found := LawNumber(tt.question)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLawNumber_WordFormWinsOverDigit(t *testing.T) {
	// "first" appears before the digit in table order, so the word form
	// decides even when a different digit is present.
	got, found := LawNumber("first law or law 3")
	assert.True(t, found)
	assert.Equal(t, 1, got)
}
