package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidPattern   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparatorPattern = regexp.MustCompile(`[-\s]+`)
)

// Slugify 把名称转成 URL 友好的 slug：NFKD 归一化后丢弃非 ASCII 字符，
// 转小写，去掉字母数字、下划线、空白、连字符以外的字符，连续的空白与
// 连字符折叠为单个连字符，最后去掉首尾的连字符和下划线。
func Slugify(value string) string {
	folded := make([]rune, 0, len(value))
	for _, r := range norm.NFKD.String(value) {
		if r < 128 {
			folded = append(folded, r)
		}
	}
	slug := strings.ToLower(string(folded))
	slug = slugInvalidPattern.ReplaceAllString(slug, "")
	slug = slugSeparatorPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-_")
}
