package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxFilenameBytes  = 200
	truncatedFileRune = 60
)

var (
	separatorsRe = regexp.MustCompile(`[#@\s]+`)
	unsafeRe     = regexp.MustCompile(`[/\\:*?"<>|]`)
)

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

// CleanFilename превращает заголовок страницы в безопасное имя файла.
// Повторный вызов на результате ничего не меняет.
func CleanFilename(title, fallback string) string {
	title = separatorsRe.ReplaceAllString(title, "_")
	title = unsafeRe.ReplaceAllString(title, "")
	title = strings.Trim(title, "_")

	if len(title) > maxFilenameBytes {
		title = strings.Trim(TruncateRunes(title, truncatedFileRune), "_")
	}

	if title == "" {
		return fallback
	}

	return title
}

// TruncateRunes обрезает строку до n символов, не разрывая UTF-8
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

// FormatMB размер в мегабайтах для вывода пользователю
func FormatMB(size int64) string {
	return fmt.Sprintf("%.1fMB", float64(size)/1048576)
}
