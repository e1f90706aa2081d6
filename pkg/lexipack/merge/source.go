package merge

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Source is one input word list: a name (used for hint resolution and
// statistics) and its decoded text content.
type Source struct {
	Name    string
	Content string
}

// legacyEncodings are tried in order when a file is not valid UTF-8.
var legacyEncodings = []encoding.Encoding{
	simplifiedchinese.GBK,
	simplifiedchinese.GB18030,
}

// decode returns the file content as UTF-8, falling back to the legacy
// encodings for old lexicon files.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, enc := range legacyEncodings {
		out, err := enc.NewDecoder().Bytes(data)
		// The decoders substitute U+FFFD for invalid sequences instead
		// of failing; treat any substitution as a decode failure so a
		// bad file is skipped loudly rather than silently mangled.
		if err == nil && !bytes.ContainsRune(out, utf8.RuneError) {
			return string(out), nil
		}
	}
	return "", fmt.Errorf("content is not valid UTF-8, GBK or GB18030")
}

// extractText collects the visible text of an HTML document, skipping
// script and style subtrees. Some legacy lists ship as HTML tables; their
// text nodes tokenize like any newline-separated file.
func extractText(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String(), nil
}

// ReadSource loads and decodes a single word-list file. HTML files have
// their visible text extracted before tokenization.
func ReadSource(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read %s: %w", path, err)
	}
	content, err := decode(data)
	if err != nil {
		return Source{}, fmt.Errorf("decode %s: %w", path, err)
	}
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), ".html") {
		content, err = extractText(content)
		if err != nil {
			return Source{}, fmt.Errorf("parse html %s: %w", path, err)
		}
	}
	return Source{Name: name, Content: content}, nil
}

// ListSources enumerates the usable word-list files in a directory in
// sorted name order. A missing directory yields an empty list, not an
// error; the caller decides whether an empty corpus is fatal.
func ListSources(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".html") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths
}
