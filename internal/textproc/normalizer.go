// Package textproc provides query normalization, tokenization, and synonym
// expansion for bilingual (English/French) search text.
package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minTokenLength is the shortest token kept by Tokenize; anything at or below
// this length carries too little signal ("I", "am", "je", "tu").
const minTokenLength = 2

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Normalize lowercases text and strips every non-word, non-space character.
// Accented letters are kept so French text survives intact.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	return strings.TrimSpace(nonWordRe.ReplaceAllString(lower, ""))
}

// Tokenize normalizes query, splits on whitespace, and discards short tokens
// and bilingual stop-words. An empty or stop-word-only query yields an empty
// slice, which callers treat as "no lexical signal".
func Tokenize(query string) []string {
	fields := strings.Fields(Normalize(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= minTokenLength {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
