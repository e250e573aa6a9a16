// Package cache реализует кеширование времён намаза поверх key-value
// хранилища: кодек ключей и свежести, месячный и недельный менеджеры,
// резервную запись и административные операции.
package cache

import (
	"strings"
	"time"
)

// MonthlyMaxAge — срок жизни месячной записи. Провайдер опрашивается не
// чаще одного раза на пару (город, месяц) в течение этого окна — главное
// свойство всей подсистемы.
const MonthlyMaxAge = 30 * 24 * time.Hour

// BuildKey собирает ключ хранилища: префикс, версия схемы и части,
// соединённые подчёркиванием. Смена версии осиротяет старые записи
// вместо миграции.
func BuildKey(prefix, version string, parts ...string) string {
	return prefix + version + strings.Join(parts, "_")
}

// IsExpired сообщает, старше ли запись с отметкой cachedAt (epoch ms)
// заданного максимального возраста.
func IsExpired(cachedAt int64, maxAge time.Duration) bool {
	return time.Now().UnixMilli()-cachedAt > maxAge.Milliseconds()
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
