package utils

import (
	"unicode"
)

// IsAlphabetic checks if a string consists entirely of letters
// (Unicode-aware, so accented Portuguese vowels pass)
func IsAlphabetic(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ContainsDigits checks if a string contains any numeric digits
func ContainsDigits(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string consists of a single repeated character
// (e.g. "aaa", "kkkk") - common typing noise that is never a real word
func IsRepetitive(s string) bool {
	runes := []rune(s)
	if len(runes) <= 2 {
		return false
	}
	first := runes[0]
	for _, r := range runes[1:] {
		if r != first {
			return false
		}
	}
	return true
}

// IsValidInput checks if input should be processed for analysis
// Returns false for empty strings, non-alphabetic input, or repetitive noise
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !IsAlphabetic(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
