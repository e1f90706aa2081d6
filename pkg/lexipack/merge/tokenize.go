package merge

import (
	"regexp"
	"strings"
)

// fallbackSplit handles single-line files delimited by whitespace, commas,
// fullwidth commas or the fullwidth middle dot.
var fallbackSplit = regexp.MustCompile(`[\s,，、]+`)

// Tokenize splits raw file content into candidate words. Newline
// separation is preferred when any newline is present; otherwise the
// fallback delimiters apply. Tokens are stripped, and empty tokens and
// `#`-prefixed comment lines are dropped.
func Tokenize(content string) []string {
	var raw []string
	if strings.ContainsRune(content, '\n') {
		raw = strings.Split(content, "\n")
	} else {
		raw = fallbackSplit.Split(content, -1)
	}

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok == "" || strings.HasPrefix(tok, "#") {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
