// Package cityname сравнивает названия городов с учётом турецкого алфавита.
// Названия приходят из обратного геокодирования и из кеша с разным регистром
// и диакритикой, поэтому сравнение выполняется по нормализованной форме.
package cityname

import "strings"

// Турецкие буквы приводятся к латинице до ToLower: строчная форма "İ"
// содержит комбинирующую точку (U+0307) и иначе не совпадёт с "i".
var replacer = strings.NewReplacer(
	"İ", "i", "I", "i", "ı", "i",
	"Ğ", "g", "ğ", "g",
	"Ü", "u", "ü", "u",
	"Ş", "s", "ş", "s",
	"Ö", "o", "ö", "o",
	"Ç", "c", "ç", "c",
)

// Normalize приводит название города к канонической форме:
// замена турецких букв, нижний регистр, обрезка пробелов.
func Normalize(city string) string {
	return strings.TrimSpace(strings.ToLower(replacer.Replace(city)))
}

// IsSame сообщает, обозначают ли две строки один и тот же город.
// Пустая строка с любой стороны означает «город неизвестен» и даёт false.
func IsSame(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Normalize(a) == Normalize(b)
}
