// Package classify provides the lexical pre-checks that run before any
// semantic search: subject detection by keyword overlap and detection of
// numeric law references ("first law", "2nd", "3") inside a question.
//
// Both checks are pure functions over the question text with deterministic
// tie-breaking: subjects win in declaration order, number words in the
// order of the vocabulary table.
package classify
