// Package greeklish transliterates Greek script into its
// informal Latin phonetic rendition, widening search recall
// for catalogs indexing Greek songs under Latin names.
package greeklish

import (
	"unicode"
	"unicode/utf8"

	"github.com/streambinder/playlistify/entity"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sequences mapping to a single Latin phoneme,
// looked up before single letters
var digraphs = map[string]string{
	"ου": "ou", "ού": "ou", "Ου": "Ou", "Ού": "Ou", "ΟΥ": "OU", "ΟΎ": "OU",
	"αυ": "av", "αύ": "av", "Αυ": "Av", "Αύ": "Av", "ΑΥ": "AV", "ΑΎ": "AV",
	"ευ": "ev", "εύ": "ev", "Ευ": "Ev", "Εύ": "Ev", "ΕΥ": "EV", "ΕΎ": "EV",
	"γγ": "ng", "Γγ": "Ng", "ΓΓ": "NG",
}

var letters = map[rune]string{
	'α': "a", 'ά': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'έ': "e",
	'ζ': "z", 'η': "i", 'ή': "i", 'θ': "th", 'ι': "i", 'ί': "i", 'ϊ': "i",
	'ΐ': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
	'ό': "o", 'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "y",
	'ύ': "y", 'ϋ': "y", 'ΰ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",
	'ώ': "o",
	'Α': "A", 'Ά': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Έ': "E",
	'Ζ': "Z", 'Η': "I", 'Ή': "I", 'Θ': "Th", 'Ι': "I", 'Ί': "I", 'Ϊ': "I",
	'Κ': "K", 'Λ': "L", 'Μ': "M", 'Ν': "N", 'Ξ': "X", 'Ο': "O", 'Ό': "O",
	'Π': "P", 'Ρ': "R", 'Σ': "S", 'Τ': "T", 'Υ': "Y", 'Ύ': "Y", 'Ϋ': "Y",
	'Φ': "F", 'Χ': "Ch", 'Ψ': "Ps", 'Ω': "O", 'Ώ': "O",
}

// runes that may open a digraph
var leads = func() map[rune]bool {
	leads := make(map[rune]bool)
	for digraph := range digraphs {
		lead, _ := utf8.DecodeRuneInString(digraph)
		leads[lead] = true
	}
	return leads
}()

type transliterator struct{ transform.NopResetter }

// Transformer replaces Greek letters with their Latin
// equivalents, leaving any other rune untouched
var Transformer transform.Transformer = transliterator{}

func (transliterator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		output, consumed := string(src[nSrc:nSrc+size]), size
		if latin, ok := letters[r]; ok {
			output = latin
		}

		if leads[r] {
			rest := src[nSrc+size:]
			if !atEOF && !utf8.FullRune(rest) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if len(rest) > 0 {
				next, nextSize := utf8.DecodeRune(rest)
				if latin, ok := digraphs[string([]rune{r, next})]; ok {
					output, consumed = latin, size+nextSize
				}
			}
		}

		if nDst+len(output) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], output)
		nSrc += consumed
	}
	return nDst, nSrc, nil
}

// String transliterates the given text, composing it
// first so that accented letters match the table:
// text with no Greek in it is returned as is
func String(text string) string {
	if !IsGreek(text) {
		return text
	}
	result, _, err := transform.String(transform.Chain(norm.NFC, Transformer), text)
	if err != nil {
		return text
	}
	return result
}

func IsGreek(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Greek, r) {
			return true
		}
	}
	return false
}

func Record(record entity.Record) entity.Record {
	record.Title = String(record.Title)
	record.Artist = String(record.Artist)
	record.Album = String(record.Album)
	return record
}
