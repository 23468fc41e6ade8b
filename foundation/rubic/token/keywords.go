package token

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// keywords is initialised once and never written afterwards, so lookups
// need no locking.
var keywords = map[string]Type{
	"def":    DEF,
	"end":    END,
	"do":     DO,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

var keywordList = func() []string {
	list := make([]string, 0, len(keywords))
	for kw := range keywords {
		list = append(list, kw)
	}
	sort.Strings(list)
	return list
}()

// Lookup classifies an identifier literal: the keyword type if ident is a
// reserved word, IDENT otherwise. Keywords are case-sensitive.
func Lookup(ident string) Type {
	if typ, ok := keywords[ident]; ok {
		return typ
	}
	return IDENT
}

// IsKeyword reports whether ident is a reserved word
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns the reserved words in alphabetical order
func Keywords() []string {
	out := make([]string, len(keywordList))
	copy(out, keywordList)
	return out
}

// Suggest returns the keyword closest to a misspelled identifier, e.g.
// "retrun" -> "return". Identifiers shorter than three characters only match
// a keyword that differs in case.
func Suggest(ident string) (string, bool) {
	if ident == "" || IsKeyword(ident) {
		return "", false
	}

	lower := strings.ToLower(ident)
	if IsKeyword(lower) {
		return lower, true
	}
	if len(ident) < 3 {
		return "", false
	}

	best, bestDist := "", -1
	for _, kw := range keywordList {
		limit := 1
		if len(kw) > 3 {
			limit = 2
		}
		d := fuzzy.LevenshteinDistance(lower, kw)
		if d > limit {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, bestDist >= 0
}
