package utils

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello there", "hello there"},
		{"script tag", `<script>alert("x")</script>need pickup`, "need pickup"},
		{"nested markup", "<div><b>old</b> fridge for collection</div>", "old fridge for collection"},
		{"attributes", `<a href="http://evil.example">click</a>`, "click"},
		{"whitespace trimmed", "  \n scrap metal \t", "scrap metal"},
		{"entities decoded", "Tan &amp; Sons", "Tan & Sons"},
		{"only markup", "<img src=x onerror=alert(1)>", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripHTML(tc.in); got != tc.want {
				t.Fatalf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
