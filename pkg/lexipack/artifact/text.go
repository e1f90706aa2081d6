package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/merge"
)

// WriteCategoryFiles writes one text file per non-empty category under
// dir: sorted words, one per line, no annotations.
func WriteCategoryFiles(dir string, corpus *merge.Corpus) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	sets := corpus.ByCategory()
	for _, cat := range category.All() {
		words := sets[cat]
		if len(words) == 0 {
			continue
		}
		path := filepath.Join(dir, cat.String()+".txt")
		if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// WriteWordList writes the flat merged word list: a commented header
// followed by every distinct word in sorted order.
func WriteWordList(path string, words []string, now time.Time) error {
	var b strings.Builder
	b.WriteString("# 敏感词库合并文件\n")
	fmt.Fprintf(&b, "# 生成时间: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "# 总词汇数: %d\n", len(words))
	b.WriteString("#\n")
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// WriteCombinedText writes the sectioned combined list: one block per
// category in priority order, each headed by the Chinese label, the
// moderation level and the word count.
func WriteCombinedText(path string, corpus *merge.Corpus, now time.Time) error {
	sets := corpus.ByCategory()

	var b strings.Builder
	fmt.Fprintf(&b, "# 完整敏感词汇库\n")
	fmt.Fprintf(&b, "# 词汇总数：%d (去重后)\n", corpus.Len())
	fmt.Fprintf(&b, "# 生成时间：%s\n\n", now.UTC().Format("2006-01-02 15:04:05 UTC"))

	for _, cat := range category.All() {
		words := sets[cat]
		b.WriteString("# ============================================\n")
		fmt.Fprintf(&b, "# %s [%s] - %d 个\n", cat.Label(), cat.Level(), len(words))
		b.WriteString("# ============================================\n")
		for _, w := range words {
			b.WriteString(w)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
