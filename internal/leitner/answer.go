package leitner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// AnswerSeparator は1つの単語に複数の正解を登録するときの区切り文字
const AnswerSeparator = ";"

// NormalizeAnswer は前後の空白を除き、NFC正規化と大文字小文字の畳み込みを行います。
// アクセント記号は区別したまま (ç と c は別の文字)
func NormalizeAnswer(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	// cases.Caser はゴルーチン間で共有できないので毎回作る
	return norm.NFC.String(cases.Fold().String(s))
}

// IsBlankAnswer は空白だけの回答かを返します
func IsBlankAnswer(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Alternatives は正解文字列を ";" で分割し、空の要素を除いて返します
func Alternatives(canonical string) []string {
	parts := strings.Split(canonical, AnswerSeparator)
	alts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			alts = append(alts, p)
		}
	}
	return alts
}

// MatchAnswer は正規化後に正解のいずれかと完全一致すれば true
func MatchAnswer(submitted, canonical string) bool {
	got := NormalizeAnswer(submitted)
	if got == "" {
		return false
	}
	for _, alt := range Alternatives(canonical) {
		if NormalizeAnswer(alt) == got {
			return true
		}
	}
	return false
}
