package keryx

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"save", "save"},
		{"Save", "save"},
		{"SaveAll", "save-all"},
		{"saveAll", "save-all"},
		{"listdir1", "listdir1"},
		{"GL11Version", "gl11-version"},
		{"stash list", "stash-list"},
		{"stash_list", "stash-list"},
		{"  Build  ", "build"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
