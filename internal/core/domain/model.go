package domain

// Result holds the outcome of a cipher operation.
type Result struct {
	// Name of the cipher that produced the result.
	Name string
	// Output is the enciphered or deciphered letter sequence, A-Z only.
	Output string
	// InputLength is the letter count of the normalized input.
	InputLength int
	// KeyLength is the letter count of the normalized key.
	KeyLength int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// LetterFrequency maps each of the 26 letters to a count. Index 0 is 'A'.
// Unseen letters hold zero, so all 26 keys are always present.
type LetterFrequency [26]int

// Count returns the count for the given uppercase letter, zero for
// anything outside A-Z.
func (f LetterFrequency) Count(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return f[letter-'A']
}

// Total returns the sum of all letter counts, which equals the length of
// the analyzed text.
func (f LetterFrequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Digram is an ordered pair of adjacent uppercase letters.
type Digram [2]byte

func (d Digram) String() string {
	return string(d[:])
}

// DigramFrequency maps observed digrams to counts. Pairs that never occur
// are not materialized.
type DigramFrequency map[Digram]int

// Count returns the count for the ordered pair (a, b).
func (f DigramFrequency) Count(a, b byte) int {
	return f[Digram{a, b}]
}

// Total returns the sum of all digram counts, which equals
// max(0, text length - 1).
func (f DigramFrequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}
