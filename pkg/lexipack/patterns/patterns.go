// Package patterns holds the per-category regular-expression rules used
// by the word classifier. A word only needs to contain a tell-tale
// substring to be flagged: recall is favored over precision, since a
// missed word is more expensive than a false positive in a moderation
// list.
package patterns

import (
	"fmt"
	"regexp"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
)

// Ruleset is an immutable collection of ordered rules per category,
// compiled once at construction and shared by reference.
type Ruleset struct {
	rules map[category.Category][]*regexp.Regexp
}

// New compiles the given expressions into a Ruleset. Every expression is
// matched case-insensitively with search semantics (a match anywhere in
// the word counts). Compilation errors abort construction.
func New(exprs map[category.Category][]string) (*Ruleset, error) {
	rules := make(map[category.Category][]*regexp.Regexp, len(exprs))
	for cat, list := range exprs {
		compiled := make([]*regexp.Regexp, 0, len(list))
		for _, expr := range list {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, fmt.Errorf("compile %s rule %q: %w", cat, expr, err)
			}
			compiled = append(compiled, re)
		}
		rules[cat] = compiled
	}
	return &Ruleset{rules: rules}, nil
}

// MustNew is New for rule tables known to be valid, such as the built-in
// defaults.
func MustNew(exprs map[category.Category][]string) *Ruleset {
	rs, err := New(exprs)
	if err != nil {
		panic(err)
	}
	return rs
}

// Matches reports whether any rule of the given category matches the word.
func (r *Ruleset) Matches(word string, cat category.Category) bool {
	for _, re := range r.rules[cat] {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// Rules returns the number of rules registered for a category.
func (r *Ruleset) Rules(cat category.Category) int {
	return len(r.rules[cat])
}

// DefaultExprs returns the built-in rule table. Rules group related
// surface forms: political figure name fragments, political vocabulary,
// profanity and sexual-term character classes, violence classes, gambling
// terms, and advertising/domain patterns.
func DefaultExprs() map[category.Category][]string {
	return map[category.Category][]string{
		category.Political: {
			// 政治人物姓氏与名字片段的组合
			`(习|胡|江|温|李|朱|邓|毛|周|刘|彭|林|陈|贺|聂|徐|罗|叶).*(平|锦|泽|家|鹏|镕|小|泽|恩|少|德|彪|伯|毅|龙|荣|向|桓|剑)`,
			`(共产|社会主义|民主|自由|独立|分裂|颠覆|反动|政府|政治|党|主席|总理|书记)`,
			`(打倒|推翻|抵制|反对).*(中国|共产|政府|党)`,
			`(台独|藏独|疆独|港独)`,
			`(法轮|轮功|大法)`,
			`(64|六四|天安门|广场)`,
			`(民运|学运|游行|示威|抗议)`,
		},
		category.Pornographic: {
			`(性|色|情|淫|奸|操|干|插|草|屌|鸡|逼|屄|妓|嫖|春)`,
			`(爱液|按摩棒|暴乳|乳房|阴|精液|高潮|做爱|性交)`,
			`(A片|黄片|色情|成人|裸|脱|露)`,
		},
		category.Violent: {
			`(杀|死|血|暴|恐|炸|枪|刀|毒|打|砍|爆|屠|虐)`,
			`(自杀|他杀|谋杀|暴力|恐怖|爆炸|袭击)`,
			`(ISIS|基地组织|恐怖分子)`,
		},
		category.Gambling: {
			`(赌|博|彩票|老虎机|百家乐|21点|轮盘|骰子)`,
			`(澳门|拉斯维加斯|赌场|庄家|下注|押注)`,
			`(六合彩|时时彩|快三|PK10)`,
		},
		category.Advertising: {
			`(办证|办理|代办|包过|保过|快速|低价|优惠|促销)`,
			`(贷款|借钱|信用卡|pos机|刷卡|套现)`,
			`(发票|票据|证书|文凭|学历|资格证)`,
			`(减肥|丰胸|美容|整形|药品|保健品)`,
			`(兼职|招聘|网赚|刷单|点击|推广)`,
			// 网站和域名
			`\.(com|cn|net|org|info|biz|tv|cc|tk|ml|ga|cf|gq)`,
			`www\.|http|ftp`,
			`qq.*\d+.*\.`,
			`\d{3,4}\.\w+\.\w+`,
		},
	}
}

// Default returns a Ruleset built from the built-in rule table.
func Default() *Ruleset {
	return MustNew(DefaultExprs())
}
