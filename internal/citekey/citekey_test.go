package citekey

import (
	"strings"
	"testing"
)

const defaultBanned = "a an the some from on in to of do with"

func TestMakeDefaultTemplate(t *testing.T) {
	gen := New("{Author}_{Year}", defaultBanned)

	tests := []struct {
		name     string
		lastname string
		date     string
		title    string
		want     string
	}{
		{"author and year", "Smith", "2020-03-05", "The Rise of Systems", "Smith_2020"},
		{"no author", "", "2020-01-01", "Some Title", "No_Author_2020"},
		{"no date", "Brown", "", "Ecology of Ants", "Brown_"},
		{"date with time suffix", "Lee", "2019-06-01 10:30:00", "Notes", "Lee_2019"},
		{"surname punctuation stripped", "O'Brien", "2021-01-01", "Waves", "OBrien_2021"},
		{"surname case folded", "VAN DER BERG", "2018-01-01", "Dunes", "VanDerBerg_2018"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen.Make(tt.lastname, tt.date, tt.title)
			if got != tt.want {
				t.Errorf("Make(%q, %q, %q) = %q, want %q",
					tt.lastname, tt.date, tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeTitlePlaceholders(t *testing.T) {
	gen := New("{Author}{Year}{Title}", defaultBanned)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"banned leading word stripped", "The Rise of Systems", "Smith2020Rise"},
		{"single letter word stripped", "A b crazy idea", "Smith2020Crazy"},
		{"punctuation ends first word", "Systems, and more", "Smith2020Systems"},
		{"colon ends first word", "Go: the language", "Smith2020Go"},
		{"empty title", "", "Smith2020"},
		{"only one banned word stripped", "The an thing", "Smith2020An"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen.Make("Smith", "2020-01-01", tt.title)
			if got != tt.want {
				t.Errorf("Make(Smith, 2020-01-01, %q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeLowercasePlaceholders(t *testing.T) {
	gen := New("{author}_{year}_{title}", defaultBanned)
	got := gen.Make("Smith", "2020-03-05", "The Rise of Systems")
	if got != "smith_20_rise" {
		t.Errorf("Make() = %q, want smith_20_rise", got)
	}
}

func TestMakeShortYearKeepsTwoDigitYears(t *testing.T) {
	gen := New("{year}", defaultBanned)
	if got := gen.Make("Smith", "89-01-01", "X"); got != "89" {
		t.Errorf("Make() = %q, want 89", got)
	}
	if got := gen.Make("Smith", "1989-01-01", "X"); got != "89" {
		t.Errorf("Make() = %q, want 89", got)
	}
}

func TestMakeNeverContainsSpaces(t *testing.T) {
	gen := New("{Author} {Year} {Title}", defaultBanned)
	got := gen.Make("de la Cruz", "2020-01-01", "An odd title")
	if strings.Contains(got, " ") {
		t.Errorf("Make() = %q, contains spaces", got)
	}
	if got == "" {
		t.Error("Make() returned empty key")
	}
}

func TestMakeNoAuthorFolding(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"{author}", "no_author"},
		{"{Author}", "No_Author"},
	}
	for _, tt := range tests {
		gen := New(tt.template, defaultBanned)
		if got := gen.Make("", "", ""); got != tt.want {
			t.Errorf("Make with template %q = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"", ""},
		{"2020-03-05", "2020"},
		{"2020-03-05 10:00:00", "2020"},
		{"2020", "2020"},
		{"0000-00-00", "0000"},
	}
	for _, tt := range tests {
		if got := Year(tt.date); got != tt.want {
			t.Errorf("Year(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestIdenticalInputsCollide(t *testing.T) {
	// Collision detection is deliberately absent: identical
	// author/year/title-word inputs produce identical keys.
	gen := New("{Author}_{Year}", defaultBanned)
	a := gen.Make("Smith", "2020-01-01", "Systems biology")
	b := gen.Make("Smith", "2020-06-01", "Systems thinking")
	if a != b {
		t.Errorf("expected identical keys, got %q and %q", a, b)
	}
}
