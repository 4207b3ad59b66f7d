package app

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Jim Brown", "jim brown"},
		{"  Bart Starr  ", "bart starr"},
		{"O.J. Simpson", "oj simpson"},
		{"Y.A. Tittle", "ya tittle"},
		{"LaDainian Tomlinson", "ladainian tomlinson"},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Jim Brown", "  O.J. Simpson ", "??? John", "mixed CASE 42", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		guess, correct string
		want           bool
	}{
		{"Jim Brown", "Jim Brown", true},   // exact
		{"Brown", "Jim Brown", true},       // last name only
		{"jim brown", "Jim Brown", true},   // case-insensitive
		{"star", "Bart Starr", true},       // lenient substring
		{"art st", "Bart Starr", true},     // substring across tokens
		{"xyz", "Bart Starr", false},       // not contained
		{"tittle", "Y.A. Tittle", true},    // punctuation stripped
		{"O.J.", "O.J. Simpson", true},     // normalized prefix
		{"Mahomes", "Patrick Mahomes", true},
		{"Rodgers ", "Aaron Rodgers", true},
		{"Favre", "Brett Favre", true},
		{"Jackson", "Lamar Jackson", true},
		{"Brady", "Peyton Manning", false},
	}
	for _, c := range cases {
		if got := Grade(c.guess, c.correct); got != c.want {
			t.Fatalf("Grade(%q, %q) = %v, want %v", c.guess, c.correct, got, c.want)
		}
	}
}
