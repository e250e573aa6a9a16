package aladhan

// Timings — времена одного дня в ответе API. Значения имеют вид
// "05:30" либо "05:30 (+03)": суффикс зоны отделяется пробелом.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// GregorianDate — григорианская дата дня: Date в формате DD-MM-YYYY,
// Day — номер дня месяца строкой.
type GregorianDate struct {
	Date string `json:"date"`
	Day  string `json:"day"`
}

// HijriMonth — название месяца хиджры на разных языках.
type HijriMonth struct {
	En string `json:"en"`
	Tr string `json:"tr,omitempty"`
}

// HijriDate — дата по хиджре.
type HijriDate struct {
	Day   string     `json:"day"`
	Month HijriMonth `json:"month"`
	Year  string     `json:"year"`
}

// DayDate объединяет оба календаря для одного дня.
type DayDate struct {
	Readable  string        `json:"readable"`
	Gregorian GregorianDate `json:"gregorian"`
	Hijri     HijriDate     `json:"hijri"`
}

// Day — один день календаря: времена и даты.
type Day struct {
	Timings Timings `json:"timings"`
	Date    DayDate `json:"date"`
}

type calendarResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   []Day  `json:"data"`
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Day    `json:"data"`
}
