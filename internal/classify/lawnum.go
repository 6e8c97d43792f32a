package classify

import (
	"regexp"
	"strings"
)

// numberWord pairs an ordinal or cardinal word with the law number it names.
// Scanned in table order, so the first entry present in the question wins.
type numberWord struct {
	word string
	num  int
}

var numberWords = []numberWord{
	{"first", 1}, {"1st", 1}, {"one", 1},
	{"second", 2}, {"2nd", 2}, {"two", 2},
	{"third", 3}, {"3rd", 3}, {"three", 3},
}

// standalone digit token in 1..3
var digitPattern = regexp.MustCompile(`\b([1-3])\b`)

// LawNumber extracts a numeric law reference from the question, case
// insensitively. Word forms are checked first; a standalone digit token is
// the fallback. Returns (0, false) when no reference is found.
func LawNumber(question string) (int, bool) {
	lower := strings.ToLower(question)

	for _, nw := range numberWords {
		if strings.Contains(lower, nw.word) {
			return nw.num, true
		}
	}

	if m := digitPattern.FindStringSubmatch(lower); m != nil {
		return int(m[1][0] - '0'), true
	}

	return 0, false
}
