package cityname

import "testing"

func TestIsSame_TableTests(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "identical ascii", a: "Ankara", b: "Ankara", want: true},
		{name: "case difference", a: "ankara", b: "ANKARA", want: true},
		{name: "dotted capital I", a: "İstanbul", b: "istanbul", want: true},
		{name: "dotless i", a: "Diyarbakır", b: "diyarbakir", want: true},
		{name: "u with umlaut", a: "Ürgüp", b: "urgup", want: true},
		{name: "c with cedilla", a: "Çorum", b: "corum", want: true},
		{name: "s with cedilla", a: "Şanlıurfa", b: "sanliurfa", want: true},
		{name: "o with umlaut", a: "Göreme", b: "goreme", want: true},
		{name: "soft g", a: "Iğdır", b: "igdir", want: true},
		{name: "surrounding spaces", a: " Izmir ", b: "izmir", want: true},
		{name: "different cities", a: "Istanbul", b: "Ankara", want: false},
		{name: "first empty", a: "", b: "Istanbul", want: false},
		{name: "second empty", a: "Istanbul", b: "", want: false},
		{name: "both empty", a: "", b: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSame(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSame(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"İstanbul", "istanbul"},
		{"DİYARBAKIR", "diyarbakir"},
		{"Ürgüp", "urgup"},
		{"Çanakkale", "canakkale"},
		{"  Bursa  ", "bursa"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
