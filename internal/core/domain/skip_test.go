package domain

import "testing"

func TestShouldSkip(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"_foo.scss", true},
		{"bar.ess.scss.css", true},
		{"bar.ess.scss.css.map", true},
		{"bar.css", false},
		{"styles/_partials/_mixins.scss", true},
		{"styles/theme.scss", false},
		{"theme.ess.css.css", true},
		{"bar.ess.css", false},
		{"bar.scss.css", false},
	}

	for _, tc := range cases {
		if got := ShouldSkip(tc.path); got != tc.want {
			t.Errorf("ShouldSkip(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
