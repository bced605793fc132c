// vigenere_test.go
package classicalcrypto

import (
	"errors"
	"testing"
)

func TestVigenereEncipher(t *testing.T) {
	v, err := NewVigenere()
	if err != nil {
		t.Fatalf("NewVigenere failed: %v", err)
	}

	tests := []struct {
		name     string
		key      string
		text     string
		expected string
	}{
		{
			name:     "Classic TYPE vector",
			key:      "TYPE",
			text:     "NOW IS THE TIME FOR ALL GOOD MEN",
			expected: "GMLMLRWIMGBIYMGEEJVSHBBIG",
		},
		{
			name:     "Obscure corner vector",
			key:      "THISISMODERNWAR",
			text:     "In an obscure corner",
			expected: "BUIFWTEQXVVPKREXY",
		},
		{
			name:     "Key A leaves text unchanged",
			key:      "a",
			text:     "Attack at dawn!",
			expected: "ATTACKATDAWN",
		},
		{
			name:     "Empty text",
			key:      "KEY",
			text:     "...",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := v.Encipher(tc.key, tc.text)
			if err != nil {
				t.Fatalf("Encipher failed: %v", err)
			}
			if result.Output != tc.expected {
				t.Errorf("Encipher(%q, %q) = %q, want %q", tc.key, tc.text, result.Output, tc.expected)
			}
			// Substitution preserves the letter count.
			if want := len(Normalize(tc.text)); len(result.Output) != want {
				t.Errorf("Encipher(%q, %q) produced %d letters, want %d", tc.key, tc.text, len(result.Output), want)
			}
		})
	}
}

func TestVigenereGroupedOutput(t *testing.T) {
	v, err := NewVigenere()
	if err != nil {
		t.Fatalf("NewVigenere failed: %v", err)
	}

	result, err := v.Encipher("TYPE", "NOW IS THE TIME FOR ALL GOOD MEN")
	if err != nil {
		t.Fatalf("Encipher failed: %v", err)
	}
	if result.Grouped != "GMLML RWIMG BIYMG EEJVS HBBIG" {
		t.Errorf("Grouped = %q, want %q", result.Grouped, "GMLML RWIMG BIYMG EEJVS HBBIG")
	}
}

func TestVigenereRoundTrip(t *testing.T) {
	v, err := NewVigenere()
	if err != nil {
		t.Fatalf("NewVigenere failed: %v", err)
	}

	keys := []string{"B", "TYPE", "THISISMODERNWAR"}
	texts := []string{"A", "WEAREDISCOVEREDFLEEATONCE", "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"}

	for _, key := range keys {
		for _, text := range texts {
			enc, err := v.Encipher(key, text)
			if err != nil {
				t.Fatalf("Encipher(%q, %q) failed: %v", key, text, err)
			}
			dec, err := v.Decipher(key, enc.Output)
			if err != nil {
				t.Fatalf("Decipher(%q, %q) failed: %v", key, enc.Output, err)
			}
			if dec.Output != text {
				t.Errorf("round trip with key %q: got %q, want %q", key, dec.Output, text)
			}
		}
	}
}

func TestVigenereAutokey(t *testing.T) {
	v, err := NewVigenere(WithAutokey(true))
	if err != nil {
		t.Fatalf("NewVigenere failed: %v", err)
	}

	enc, err := v.Encipher("ZZZ", "AAAAAA")
	if err != nil {
		t.Fatalf("Encipher failed: %v", err)
	}
	if enc.Output != "ZZZAAA" {
		t.Errorf("Encipher = %q, want %q", enc.Output, "ZZZAAA")
	}
	if enc.Name != "vigenere_autokey" {
		t.Errorf("Name = %q, want %q", enc.Name, "vigenere_autokey")
	}

	dec, err := v.Decipher("ZZZ", enc.Output)
	if err != nil {
		t.Fatalf("Decipher failed: %v", err)
	}
	if dec.Output != "AAAAAA" {
		t.Errorf("Decipher = %q, want %q", dec.Output, "AAAAAA")
	}
}

func TestVigenereAutokeyRoundTrip(t *testing.T) {
	v, err := NewVigenere(WithAutokey(true))
	if err != nil {
		t.Fatalf("NewVigenere failed: %v", err)
	}

	tests := []struct {
		key  string
		text string
	}{
		{"QUEENLY", "ATTACKATDAWN"},
		{"K", "NOWISTHETIMEFORALLGOODMEN"},
		{"PRIMINGKEYLONGERTHANTEXT", "FLEE"},
	}

	for _, tc := range tests {
		enc, err := v.Encipher(tc.key, tc.text)
		if err != nil {
			t.Fatalf("Encipher(%q, %q) failed: %v", tc.key, tc.text, err)
		}
		dec, err := v.Decipher(tc.key, enc.Output)
		if err != nil {
			t.Fatalf("Decipher(%q, %q) failed: %v", tc.key, enc.Output, err)
		}
		if dec.Output != tc.text {
			t.Errorf("autokey round trip with key %q: got %q, want %q", tc.key, dec.Output, tc.text)
		}
	}
}

func TestVigenereInvalidKey(t *testing.T) {
	for _, autokey := range []bool{false, true} {
		v, err := NewVigenere(WithAutokey(autokey))
		if err != nil {
			t.Fatalf("NewVigenere failed: %v", err)
		}

		for _, key := range []string{"", "1234", "?!"} {
			if _, err := v.Encipher(key, "SOMETEXT"); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Encipher with key %q (autokey=%v): got %v, want ErrInvalidKey", key, autokey, err)
			}
			if _, err := v.Decipher(key, "SOMETEXT"); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Decipher with key %q (autokey=%v): got %v, want ErrInvalidKey", key, autokey, err)
			}
		}
	}
}
