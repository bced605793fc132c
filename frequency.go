// frequency.go
// From David Kahn's "The Codebreakers": the letters of language have
// personalities of their own. Counting how often each letter and each
// adjacent letter pair appears is the first step of breaking any simple
// substitution.
package classicalcrypto

// FrequencyTable maps each of the 26 letters to a count. Index 0 is 'A'.
// All 26 letters are always present; unseen ones hold zero.
type FrequencyTable [26]int

// Count returns the count for the given uppercase letter, zero for
// anything outside A-Z.
func (t FrequencyTable) Count(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return t[letter-'A']
}

// Total returns the sum of all counts, which equals the length of the
// normalized text.
func (t FrequencyTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Digram is an ordered pair of adjacent uppercase letters.
type Digram [2]byte

func (d Digram) String() string {
	return string(d[:])
}

// DigramTable maps observed digrams to counts. Pairs that never occur are
// not materialized; indexing an absent pair yields zero.
type DigramTable map[Digram]int

// Count returns the count for the ordered pair (a, b).
func (t DigramTable) Count(a, b byte) int {
	return t[Digram{a, b}]
}

// Total returns the sum of all counts, which equals max(0, length-1) for
// the normalized text.
func (t DigramTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// LetterFrequency counts how often each letter occurs in the text. The
// text is normalized first.
func LetterFrequency(text string) FrequencyTable {
	var counts FrequencyTable
	t := Normalize(text)
	for i := 0; i < len(t); i++ {
		counts[t[i]-'A']++
	}
	return counts
}

// DigramFrequency counts overlapping adjacent letter pairs in the text:
// position i contributes the pair (text[i], text[i+1]), so "AAA" yields
// the pair AA twice. The text is normalized first; texts shorter than two
// letters produce an empty table.
func DigramFrequency(text string) DigramTable {
	counts := make(DigramTable)
	t := Normalize(text)
	for i := 0; i+1 < len(t); i++ {
		counts[Digram{t[i], t[i+1]}]++
	}
	return counts
}
