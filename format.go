// format.go
// Display helpers for the CLI layer: cipher output in the traditional
// five-letter groups, and frequency tables as bar histograms. None of
// these affect the cipher contracts; the engines always return raw A-Z
// sequences.
package classicalcrypto

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_classical_crypto/internal/pool"
)

// Group formatting follows historical telegraph practice.
const (
	// GroupWidth is the number of letters per group.
	GroupWidth = 5
	// GroupsPerLine is the number of groups on one line.
	GroupsPerLine = 5
)

var builderPool = pool.NewStringBuilderPool()

// FormatGroups splits a letter sequence into five-letter groups separated
// by spaces, 25 letters per line.
func FormatGroups(text string) string {
	if len(text) == 0 {
		return ""
	}

	sb := builderPool.Get()
	defer builderPool.Put(sb)

	for i := 0; i < len(text); i++ {
		if i != 0 {
			if i%(GroupWidth*GroupsPerLine) == 0 {
				sb.WriteByte('\n')
			} else if i%GroupWidth == 0 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(text[i])
	}

	return sb.String()
}

// Histogram renders a letter frequency table as one bar per letter:
//
//	A |||
//	B |
//	...
func Histogram(table FrequencyTable) string {
	sb := builderPool.Get()
	defer builderPool.Put(sb)

	for i, count := range table {
		sb.WriteByte('A' + byte(i))
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat("|", count))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// DigramGrid renders a digram table as a 26x26 grid of counts, one row
// per first letter. Absent pairs are left blank.
func DigramGrid(table DigramTable) string {
	sb := builderPool.Get()
	defer builderPool.Put(sb)

	for left := byte('A'); left <= 'Z'; left++ {
		for right := byte('A'); right <= 'Z'; right++ {
			if count, ok := table[Digram{left, right}]; ok {
				fmt.Fprintf(sb, "%c%c(%2d)  ", left, right, count)
			} else {
				fmt.Fprintf(sb, "%c%c(  )  ", left, right)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
