package patterns

import (
	"testing"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
)

func TestDefaultMatches(t *testing.T) {
	rs := Default()

	cases := []struct {
		word string
		cat  category.Category
	}{
		{"习近平", category.Political},
		{"法轮功", category.Political},
		{"台独", category.Political},
		{"六四", category.Political},
		{"打倒共产党", category.Political},
		{"做爱", category.Pornographic},
		{"A片", category.Pornographic},
		{"按摩棒", category.Pornographic},
		{"恐怖分子", category.Violent},
		{"爆炸", category.Violent},
		{"ISIS", category.Violent},
		{"百家乐", category.Gambling},
		{"六合彩", category.Gambling},
		{"下注", category.Gambling},
		{"办证", category.Advertising},
		{"贷款", category.Advertising},
		{"www.example.com", category.Advertising},
		{"test.cn", category.Advertising},
	}

	for _, tc := range cases {
		if !rs.Matches(tc.word, tc.cat) {
			t.Errorf("Matches(%q, %s) = false, want true", tc.word, tc.cat)
		}
	}
}

func TestNoMatch(t *testing.T) {
	rs := Default()
	for _, cat := range category.All() {
		if rs.Matches("示例", cat) {
			t.Errorf("示例 should not match %s", cat)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	rs := Default()
	if !rs.Matches("isis", category.Violent) {
		t.Error("matching should be case-insensitive")
	}
	if !rs.Matches("WWW.test", category.Advertising) {
		t.Error("matching should be case-insensitive for URL patterns")
	}
}

func TestSearchSemantics(t *testing.T) {
	rs := Default()
	// A match anywhere in the word counts, not only a full match.
	if !rs.Matches("某某恐怖主义组织", category.Violent) {
		t.Error("embedded pattern should match")
	}
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	_, err := New(map[category.Category][]string{
		category.Political: {"(unclosed"},
	})
	if err == nil {
		t.Fatal("invalid pattern should fail construction")
	}
}

func TestOthersHasNoRules(t *testing.T) {
	rs := Default()
	if rs.Rules(category.Others) != 0 {
		t.Error("others is the fallback category and carries no rules")
	}
	if rs.Matches("任何词", category.Others) {
		t.Error("others should never match directly")
	}
}
