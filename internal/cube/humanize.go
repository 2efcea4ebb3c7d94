package cube

import (
	"strings"
	"unicode"
)

// Humanize converts a measure or dimension name into a display title.
// Example: "numberOfUsers" -> "Number Of Users", "country_code" -> "Country Code"
func Humanize(name string) string {
	words := splitWords(camelToSnake(name))
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// Pascalize converts a file base name into a cube name.
// Example: "characters" -> "Characters", "blog_posts" -> "BlogPosts"
func Pascalize(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, "")
}

// camelToSnake converts camelCase or PascalCase to snake_case
func camelToSnake(s string) string {
	runes := []rune(s)

	var result strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			result.WriteRune(r)
			continue
		}
		// Break before an uppercase letter that follows a lowercase letter or
		// digit, or that starts a new word after an acronym ("HTTPServer").
		if i > 0 {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteRune('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
