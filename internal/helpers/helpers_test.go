package helpers

import "testing"

func TestIsPasswordStrong(t *testing.T) {
	cases := map[string]bool{
		"Str0ngPass":    true,
		"short1A":       false,
		"alllowercase1": false,
		"ALLUPPERCASE1": false,
		"NoDigitsHere":  false,
	}
	for password, want := range cases {
		if got := IsPasswordStrong(password); got != want {
			t.Errorf("IsPasswordStrong(%q) = %v, want %v", password, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"avatar.png":       "avatar.png",
		"../../etc/passwd": "passwd",
		`..\..\boot.ini`:   "boot.ini",
		"my photo (1).jpg": "my_photo__1_.jpg",
		"..":               "file",
		"":                 "file",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
