// Package report renders the human-readable statistics report and the
// README shipped with the categorized output.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/stats"
)

// Statistics renders the statistics.txt content: totals, dedup rate,
// per-file counts and per-category counts with percentages.
func Statistics(s stats.Statistics, words []string, now time.Time) string {
	var b strings.Builder

	b.WriteString("敏感词库处理统计报告\n")
	b.WriteString("======================\n\n")
	fmt.Fprintf(&b, "生成时间: %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## 总体统计\n\n")
	fmt.Fprintf(&b, "处理前总词汇数: %d\n", s.TotalBefore)
	fmt.Fprintf(&b, "处理后总词汇数: %d\n", s.TotalAfter)
	fmt.Fprintf(&b, "去除重复词汇: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "去重率: %.2f%%\n\n", s.DedupRate())

	b.WriteString("## 原始文件统计\n\n")
	for _, name := range sortedFileNames(s.FileCounts) {
		fmt.Fprintf(&b, "%s: %d 个词汇\n", name, s.FileCounts[name])
	}

	b.WriteString("\n## 分类结果统计\n\n")
	for _, cat := range category.All() {
		fmt.Fprintf(&b, "%s (%s.txt): %d 个词汇 (%.1f%%)\n",
			cat.Label(), cat, s.CategoryCounts[cat], s.CategoryPercent(cat))
	}

	b.WriteString("\n## 词长分布\n\n")
	for _, bucket := range stats.LengthHistogram(words) {
		fmt.Fprintf(&b, "长度 %d: %d 个词汇\n", bucket.Length, bucket.Count)
	}

	return b.String()
}

// Readme renders the README.md content for the output directory.
func Readme(s stats.Statistics, now time.Time) string {
	var b strings.Builder

	b.WriteString("# 敏感词库分类结果\n\n")
	b.WriteString("本目录包含经过分类整理的敏感词库，所有词汇均已去重并按类别分类。\n\n")

	b.WriteString("## 分类文件\n\n")
	for _, cat := range category.All() {
		count := s.CategoryCounts[cat]
		if count == 0 {
			continue
		}
		fmt.Fprintf(&b, "- **%s.txt** - %s (%d 个词汇)\n", cat, cat.Label(), count)
	}

	b.WriteString("\n## 统计摘要\n\n")
	fmt.Fprintf(&b, "- 处理前总词汇数: %d\n", s.TotalBefore)
	fmt.Fprintf(&b, "- 处理后总词汇数: %d\n", s.TotalAfter)
	fmt.Fprintf(&b, "- 去除重复词汇: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "- 去重率: %.1f%%\n", s.DedupRate())

	fmt.Fprintf(&b, "\n## 生成时间\n\n%s\n", now.Format("2006-01-02 15:04:05"))

	return b.String()
}

// CheckExpected compares actual per-category counts with externally
// supplied expectations. Differences are warnings, not errors: the corpus
// is still valid, the counts just moved.
func CheckExpected(s stats.Statistics, expected map[category.Category]int) []string {
	var warnings []string
	for _, cat := range category.All() {
		want, ok := expected[cat]
		if !ok {
			continue
		}
		if got := s.CategoryCounts[cat]; got != want {
			warnings = append(warnings,
				fmt.Sprintf("%s: expected %d words, got %d", cat, want, got))
		}
	}
	return warnings
}

func sortedFileNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
