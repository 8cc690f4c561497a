package keys

import "testing"

func TestEncounterKey(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"Slime"}, "slime"},
		{[]string{"Giant Rat", " slime "}, "giant_rat+slime"},
		{[]string{"slime", "Giant  Rat"}, "giant_rat+slime"},
		{[]string{"", "Bat", "  "}, "bat"},
		{[]string{"Bat", "bat"}, "bat+bat"},
	}
	for _, c := range cases {
		if got := EncounterKey(c.in); got != c.want {
			t.Fatalf("EncounterKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
