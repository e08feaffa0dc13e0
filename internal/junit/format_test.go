package junit

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"shorter", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"longer", "abcdefgh", 5, "abcde... [truncated 3 chars]"},
		{"empty", "", 3, ""},
		{"counts characters not bytes", "ééééé", 2, "éé... [truncated 3 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.s, tt.n))
		})
	}
}

func TestTruncate_KeepsPrefix(t *testing.T) {
	s := strings.Repeat("0123456789", 30)
	for _, n := range []int{1, 10, 256, 299, 300, 2000} {
		got := Truncate(s, n)
		if n >= len(s) {
			assert.Equal(t, s, got)
			continue
		}
		assert.True(t, strings.HasPrefix(got, s[:n]))
		assert.Equal(t, s[:n]+"... [truncated "+strconv.Itoa(len(s)-n)+" chars]", got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a & b`, "a &amp; b"},
		{`<tag attr="v">`, "&lt;tag attr=&quot;v&quot;&gt;"},
		{"&lt;", "&amp;lt;"},
		{"it's", "it's"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

var bareAmpersand = regexp.MustCompile(`&(?:amp|quot|lt|gt);|&`)

func TestEscape_NoUnescapedSpecials(t *testing.T) {
	inputs := []string{
		`&&&`,
		`"<>"`,
		`&amp;&quot;`,
		`<script>alert("x & y")</script>`,
		strings.Repeat(`&<">`, 50),
	}

	for _, in := range inputs {
		out := Escape(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, `"`)
		for _, m := range bareAmpersand.FindAllString(out, -1) {
			assert.NotEqual(t, "&", m, "bare ampersand in %q", out)
		}
	}
}

func TestSanitizeClassname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p1", "p1"},
		{"harmful:hate", "harmful-hate"},
		{"a b/c", "a-b-c"},
		{"ok_name.v1-2", "ok_name.v1-2"},
		{"é", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeClassname(tt.in))
		})
	}
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "a b c", excerpt("  a \n\t b   c  ", 80))
	assert.Equal(t, "", excerpt(" \n ", 80))
	assert.Equal(t, strings.Repeat("x", 80), excerpt(strings.Repeat("x", 200), 80))
	assert.Equal(t, strings.Repeat("x", 79), excerpt(strings.Repeat("x", 79)+"   yz", 80))
}
