// transposition.go
// Columnar transposition writes the message row by row into a grid as wide
// as the key, then reads it out column by column in the order given by
// ranking the key letters alphabetically. Example with key CAB (ranks
// 2 0 1) and message ATTACKATDAWN:
//
//	C  A  B
//	-------
//	A  T  T
//	A  C  K
//	A  T  D
//	A  W  N
//
// Columns are read in rank order: TCTW TKDN AAAA. The last grid row may be
// short; deciphering reconstructs the uneven column heights from the
// message length and the key width.
package classicalcrypto

import "fmt"

// Transposition provides methods to encipher and decipher text with the
// columnar transposition cipher using configurable parameters.
type Transposition struct {
	config Config
}

// NewTransposition creates a new columnar transposition cipher with the
// provided functional options. If no logger is provided, a default logger
// is created.
func NewTransposition(opts ...Option) (*Transposition, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = Normalize
	}
	return &Transposition{config: cfg}, nil
}

// Ranks converts a keyphrase into a zero-indexed numeric key by counting
// the letters off in alphabetical order. Duplicate letters are counted
// left to right: "BACD" becomes [1 0 2 3] and "BAACDD" becomes
// [2 0 1 3 4 5]. The keyphrase is normalized first.
func Ranks(keyphrase string) []int {
	k := Normalize(keyphrase)
	ranks := make([]int, len(k))
	for i := 0; i < len(k); i++ {
		r := 0
		for j := 0; j < len(k); j++ {
			if k[j] < k[i] || (k[j] == k[i] && j < i) {
				r++
			}
		}
		ranks[i] = r
	}
	return ranks
}

// readOrder returns the original column positions in read-out order.
func readOrder(key string) []int {
	ranks := Ranks(key)
	order := make([]int, len(ranks))
	for column, rank := range ranks {
		order[rank] = column
	}
	return order
}

// Encipher enciphers text under key. The final grid row is left short when
// the text length is not a multiple of the key width; missing cells are
// skipped, never padded.
func (tr *Transposition) Encipher(key, text string) (Result, error) {
	k := tr.config.Normalizer(key)
	if len(k) == 0 {
		tr.config.Logger.Error("Key normalized to an empty sequence", "key", key)
		return Result{}, fmt.Errorf("transposition: %w", ErrInvalidKey)
	}
	plain := tr.config.Normalizer(text)

	tr.config.Logger.Info("Starting encipherment",
		"cipher", "transposition",
		"columns", len(k),
		"text_length", len(plain),
	)

	w := len(k)
	out := make([]byte, 0, len(plain))
	for _, column := range readOrder(k) {
		for pos := column; pos < len(plain); pos += w {
			out = append(out, plain[pos])
		}
	}

	return tr.result(string(out), len(plain), w), nil
}

// Decipher deciphers text under key. Every column holds at least
// len/width letters; the leftmost len%width original columns hold one
// more. The cipher text is split into those columns in rank order and the
// grid is read back row by row.
func (tr *Transposition) Decipher(key, text string) (Result, error) {
	k := tr.config.Normalizer(key)
	if len(k) == 0 {
		tr.config.Logger.Error("Key normalized to an empty sequence", "key", key)
		return Result{}, fmt.Errorf("transposition: %w", ErrInvalidKey)
	}
	cipher := tr.config.Normalizer(text)

	tr.config.Logger.Info("Starting decipherment",
		"cipher", "transposition",
		"columns", len(k),
		"text_length", len(cipher),
	)

	w := len(k)
	base := len(cipher) / w
	remainder := len(cipher) % w

	columns := make([][]byte, w)
	cursor := 0
	for _, column := range readOrder(k) {
		height := base
		if column < remainder {
			height++
		}
		columns[column] = []byte(cipher[cursor : cursor+height])
		cursor += height
	}

	out := make([]byte, 0, len(cipher))
	for row := 0; row <= base; row++ {
		for column := 0; column < w; column++ {
			if row < len(columns[column]) {
				out = append(out, columns[column][row])
			}
		}
	}

	return tr.result(string(out), len(cipher), w), nil
}

func (tr *Transposition) result(output string, inputLen, keyLen int) Result {
	details := make(map[string]interface{})
	details["columns"] = keyLen

	return Result{
		Name:        "transposition",
		Output:      output,
		Grouped:     FormatGroups(output),
		InputLength: inputLen,
		KeyLength:   keyLen,
		Details:     details,
	}
}
