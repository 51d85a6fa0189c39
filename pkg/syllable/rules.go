package syllable

// Vowel-pair and consonant-cluster rule tables for Brazilian Portuguese
// orthography. The segmentation in syllable.go walks these tables instead of
// branching on individual letters, so each rule stays independently testable.

// vowelClass groups vowel runes by how they behave inside a vowel run.
type vowelClass uint8

const (
	vStrong    vowelClass = iota // a e o and their acute/grave/circumflex forms
	vNasal                       // ã õ
	vWeakI                       // i y
	vWeakU                       // u ü
	vStressedI                   // í
	vStressedU                   // ú
)

var vowelClasses = map[rune]vowelClass{
	'a': vStrong, 'á': vStrong, 'à': vStrong, 'â': vStrong,
	'e': vStrong, 'é': vStrong, 'è': vStrong, 'ê': vStrong,
	'o': vStrong, 'ó': vStrong, 'ò': vStrong, 'ô': vStrong,
	'ã': vNasal, 'õ': vNasal,
	'i': vWeakI, 'ì': vWeakI, 'y': vWeakI,
	'u': vWeakU, 'ù': vWeakU, 'ü': vWeakU,
	'í': vStressedI,
	'ú': vStressedU,
}

// hiatusTable decides whether two adjacent vowels belong to separate nuclei
// (true = hiatus) or form a diphthong (false). Keyed by the class pair,
// first vowel then second.
//
// The entries encode the standard pronunciation rules:
//   - two strong vowels never share a nucleus (ca-os, po-e-ta)
//   - falling pairs, strong followed by weak, stay together (pai, céu, ouro)
//   - nasal ã/õ absorbs a following vowel (não, mãe, põe)
//   - rising pairs, weak followed by strong, split (di-a, ri-o, su-ar)
//   - two distinct weak vowels stay together (fui, viu)
//   - a stressed í/ú never shares a nucleus with a neighbour (sa-ú-de, ra-í-zes)
var hiatusTable = map[[2]vowelClass]bool{
	{vStrong, vStrong}:    true,
	{vStrong, vNasal}:     true,
	{vStrong, vWeakI}:     false,
	{vStrong, vWeakU}:     false,
	{vStrong, vStressedI}: true,
	{vStrong, vStressedU}: true,

	{vNasal, vStrong}:     false,
	{vNasal, vNasal}:      true,
	{vNasal, vWeakI}:      false,
	{vNasal, vWeakU}:      false,
	{vNasal, vStressedI}:  true,
	{vNasal, vStressedU}:  true,

	{vWeakI, vStrong}:     true,
	{vWeakI, vNasal}:      true,
	{vWeakI, vWeakI}:      true,
	{vWeakI, vWeakU}:      false,
	{vWeakI, vStressedI}:  true,
	{vWeakI, vStressedU}:  true,

	{vWeakU, vStrong}:     true,
	{vWeakU, vNasal}:      true,
	{vWeakU, vWeakI}:      false,
	{vWeakU, vWeakU}:      true,
	{vWeakU, vStressedI}:  true,
	{vWeakU, vStressedU}:  true,

	{vStressedI, vStrong}:    true,
	{vStressedI, vNasal}:     true,
	{vStressedI, vWeakI}:     true,
	{vStressedI, vWeakU}:     true,
	{vStressedI, vStressedI}: true,
	{vStressedI, vStressedU}: true,

	{vStressedU, vStrong}:    true,
	{vStressedU, vNasal}:     true,
	{vStressedU, vWeakI}:     true,
	{vStressedU, vWeakU}:     true,
	{vStressedU, vStressedI}: true,
	{vStressedU, vStressedU}: true,
}

// inseparableOnsets are consonant pairs that always open the next syllable
// as a unit: obstruent+liquid clusters (a-brir, re-gra) and the ch/lh/nh
// digraphs (fe-cha-do, mi-lho, ba-nha).
var inseparableOnsets = map[[2]rune]bool{
	{'b', 'l'}: true, {'b', 'r'}: true,
	{'c', 'l'}: true, {'c', 'r'}: true,
	{'d', 'l'}: true, {'d', 'r'}: true,
	{'f', 'l'}: true, {'f', 'r'}: true,
	{'g', 'l'}: true, {'g', 'r'}: true,
	{'p', 'l'}: true, {'p', 'r'}: true,
	{'t', 'l'}: true, {'t', 'r'}: true,
	{'v', 'l'}: true, {'v', 'r'}: true,
	{'c', 'h'}: true,
	{'l', 'h'}: true,
	{'n', 'h'}: true,
}

// isVowel reports whether r carries a vowel class.
func isVowel(r rune) bool {
	_, ok := vowelClasses[r]
	return ok
}

// pairIsHiatus applies the rule table with its contextual overrides:
// identical vowels always split (co-or-de-nar, vo-o), a u gliding after
// q/g fuses with the next vowel (á-gua, quo-ta), and a weak vowel in
// front of an nh digraph anchors its own nucleus (ra-i-nha).
func pairIsHiatus(runes []rune, i, j int) bool {
	a, b := runes[i], runes[j]
	if a == b {
		return true
	}
	ca, cb := vowelClasses[a], vowelClasses[b]
	if ca == vWeakU && i > 0 && (runes[i-1] == 'q' || runes[i-1] == 'g') {
		return false
	}
	if (cb == vWeakI || cb == vWeakU) && j+2 < len(runes) && runes[j+1] == 'n' && runes[j+2] == 'h' {
		return true
	}
	return hiatusTable[[2]vowelClass{ca, cb}]
}
