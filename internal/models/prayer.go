// Package models содержит структуры данных приложения: времена намаза,
// месячные и недельные кеш-записи, резервная запись и локация пользователя.
package models

// PrayerTimes содержит шесть времён намаза одного дня в формате HH:MM.
// Отсутствующее у провайдера значение заменяется на "00:00", поле никогда
// не остаётся пустым. Поля дат используются только для отображения.
type PrayerTimes struct {
	Imsak  string `json:"imsak"`
	Gunes  string `json:"gunes"`
	Ogle   string `json:"ogle"`
	Ikindi string `json:"ikindi"`
	Aksam  string `json:"aksam"`
	Yatsi  string `json:"yatsi"`

	MiladiTarih string `json:"miladi_tarih,omitempty"`
	HicriTarih  string `json:"hicri_tarih,omitempty"`
}

// MonthlyData хранит времена намаза для каждого дня месяца, ключ — число месяца (1-31).
type MonthlyData map[int]PrayerTimes

// MonthlyRecord — кеш-запись месячных времён для одного города.
// Запись полностью заменяется при новой загрузке, частичных обновлений нет.
type MonthlyRecord struct {
	City     string      `json:"city"`
	Year     int         `json:"year"`
	Month    int         `json:"month"`
	Data     MonthlyData `json:"data"`
	CachedAt int64       `json:"cachedAt"` // epoch в миллисекундах
}

// BackupRecord — единственная резервная запись «последнего успешного результата».
// Не имеет срока жизни: используется как последнее средство при полном отказе
// сети и кеша, независимо от города запроса.
type BackupRecord struct {
	City     string      `json:"city"`
	Data     PrayerTimes `json:"data"`
	CachedAt int64       `json:"cachedAt"`
}
