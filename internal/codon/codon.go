// Package codon converts between DNA and text, four bases per character.
//
// Each base carries two bits (T=00, A=01, G=10, C=11) and a "codon" of four
// bases is read most significant pair first, so "TGTC" is '#' (0x23) and
// "TCTT" is '0' (0x30).
package codon

import (
	"fmt"
	"strings"
)

// Size is the number of bases that make up a single character.
const Size = 4

// bases is indexed by the two-bit value of a base
const bases = "TAGC"

// value maps a base to its two-bit value, -1 for anything outside the alphabet
var value [256]int8

func init() {
	for i := range value {
		value[i] = -1
	}
	for i := 0; i < len(bases); i++ {
		value[bases[i]] = int8(i)
	}
}

// Translator turns a DNA string, whose length is a multiple of Size, into text.
type Translator func(dna string) string

// Translate converts dna into text, one character per codon.
//
// Only whole codons are read; callers are expected to pass a length that is a
// multiple of Size. Bases outside of ACGT read as T.
func Translate(dna string) string {
	n := len(dna) / Size
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for _, c := range []byte(dna[i*Size : i*Size+Size]) {
			v := value[c]
			if v < 0 {
				v = 0
			}
			b = b<<2 | byte(v)
		}
		out[i] = b
	}
	return string(out)
}

// Decode is Translate for untrusted input: the sequence is upper-cased and
// must be made up of whole codons of A, C, G and T.
func Decode(dna string) (string, error) {
	dna = strings.ToUpper(strings.TrimSpace(dna))
	if len(dna)%Size != 0 {
		return "", fmt.Errorf("sequence length %d is not a multiple of %d", len(dna), Size)
	}
	for i := 0; i < len(dna); i++ {
		if value[dna[i]] < 0 {
			return "", fmt.Errorf("invalid base %q at position %d", dna[i], i)
		}
	}
	return Translate(dna), nil
}

// Encode is the inverse of Translate.
func Encode(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * Size)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for shift := 6; shift >= 0; shift -= 2 {
			sb.WriteByte(bases[(b>>uint(shift))&0x3])
		}
	}
	return sb.String()
}
