package models

// WeeklyPrayerTime — времена намаза одного дня в недельной выборке.
// Date в формате ISO 8601 (YYYY-MM-DD), Gregorian и Hijri — строки для отображения.
type WeeklyPrayerTime struct {
	Date      string      `json:"date"`
	Gregorian string      `json:"gregorian"`
	Hijri     string      `json:"hijri"`
	Timings   PrayerTimes `json:"timings"`
}

// WeeklyRecord — кеш-запись времён текущей ISO-недели (понедельник-воскресенье)
// для пары город/страна. Инвалидируется не по возрасту, а по выходу сегодняшней
// даты за границы недели.
type WeeklyRecord struct {
	City      string             `json:"city"`
	Country   string             `json:"country"`
	WeekStart string             `json:"weekStart"`
	WeekEnd   string             `json:"weekEnd"`
	Data      []WeeklyPrayerTime `json:"data"`
	CachedAt  int64              `json:"cachedAt"`
}
