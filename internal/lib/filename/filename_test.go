package filename_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"imageGallery/internal/lib/filename"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain", input: "photo.jpg", expected: "photo.jpg"},
		{name: "Spaces and punctuation", input: "cat pic!.png", expected: "cat_pic_.png"},
		{name: "Traversal", input: "../../etc/passwd", expected: ".._.._etc_passwd"},
		{name: "Windows separators", input: `..\..\boot.ini`, expected: ".._.._boot.ini"},
		{name: "Shell characters", input: "a;rm -rf $(x)|`y`.gif", expected: "a_rm_-rf___x___y_.gif"},
		{name: "Unicode", input: "été.webp", expected: "_t_.webp"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, filename.Sanitize(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	re := regexp.MustCompile(`^\d+-\d+-cat_pic_\.png$`)

	name := filename.New("cat pic!.png")
	require.Regexp(t, re, name)
}

func TestNew_NoSeparators(t *testing.T) {
	for _, original := range []string{"../../etc/passwd", "/abs/path.png", `C:\x\y.jpg`, "..", "."} {
		name := filename.New(original)

		require.NotContains(t, name, "/")
		require.NotContains(t, name, `\`)
		require.NotEqual(t, "..", name)
		require.False(t, strings.HasPrefix(name, "."), name)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		name := filename.New("same.png")

		_, dup := seen[name]
		require.False(t, dup, "duplicate name %s", name)

		seen[name] = struct{}{}
	}
}
