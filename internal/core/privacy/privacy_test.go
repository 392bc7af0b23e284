package privacy

import "testing"

func TestMask(t *testing.T) {
	cases := []struct {
		title  string
		want   string
		masked bool
	}{
		{"editor - main.go", "editor - main.go", false},
		{"My Bank - Overview", MaskedTitle, true},
		{"WHATSAPP Web", MaskedTitle, true},
		{"Login - Acme SSO", MaskedTitle, true},
		{"PayPal checkout", MaskedTitle, true},
		{"", "", false},
	}

	for _, tc := range cases {
		got, masked := Mask(tc.title)
		if got != tc.want || masked != tc.masked {
			t.Fatalf("Mask(%q) = (%q, %v), want (%q, %v)", tc.title, got, masked, tc.want, tc.masked)
		}
	}
}
