package dotprinter

import "testing"

func TestDisplayWidthWideRunes(t *testing.T) {
	tests := map[string]struct {
		in   string
		want int
	}{
		"Empty":       {in: "", want: 0},
		"ASCII":       {in: "galaxy", want: 6},
		"WideCJK":     {in: "世界", want: 4},
		"MixedWidth":  {in: "a世b界", want: 6},
		"QuotedASCII": {in: `"galaxy"`, want: 8},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := displayWidth(test.in)
			if got != test.want {
				t.Errorf("displayWidth(%q) = %d, want %d", test.in, got, test.want)
			}
		})
	}
}
