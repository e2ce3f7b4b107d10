package countries

import "testing"

func TestNameAlpha2(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"US", "United States"},
		{"BR", "Brazil"},
		{"XK", "Kosovo"},
		{"ZZ", "ZZ"},
		{"us", "us"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NameAlpha2(tt.code); got != tt.want {
			t.Errorf("NameAlpha2(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNameAlpha3(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"USA", "United States"},
		{"DEU", "Germany"},
		{"XKX", "Kosovo"},
		{"QQQ", "QQQ"},
		{"US", "US"},
	}
	for _, tt := range tests {
		if got := NameAlpha3(tt.code); got != tt.want {
			t.Errorf("NameAlpha3(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAlpha3(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"US", "USA"},
		{"BR", "BRA"},
		{"GB", "GBR"},
		{"DE", "DEU"},
		{"XK", "XKX"},
		{"", ""},
		{"USA", "USA"},
		{"1!", "1!"},
	}
	for _, tt := range tests {
		if got := Alpha3(tt.code); got != tt.want {
			t.Errorf("Alpha3(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

// Every alpha-2 code in the name table should convert to an alpha-3 code
// that has a name of its own.
func TestTablesAgree(t *testing.T) {
	for code, name := range alpha2Names {
		iso3 := Alpha3(code)
		if got := NameAlpha3(iso3); got != name {
			t.Errorf("%s -> %s: name %q, want %q", code, iso3, got, name)
		}
	}
	if len(alpha2Names) != len(alpha3Names) {
		t.Errorf("table sizes differ: %d vs %d", len(alpha2Names), len(alpha3Names))
	}
}
