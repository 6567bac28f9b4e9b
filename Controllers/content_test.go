package Controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessContent(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold",
			in:   "this is **important** text",
			want: "this is <strong>important</strong> text",
		},
		{
			name: "italic",
			in:   "an *emphasized* word",
			want: "an <em>emphasized</em> word",
		},
		{
			name: "hashtag",
			in:   "خبر #آموزش منتشر شد",
			want: `خبر <span class="hashtag">#آموزش</span> منتشر شد`,
		},
		{
			name: "line breaks",
			in:   "first line\nsecond line",
			want: "first line<br>\nsecond line",
		},
		{
			name: "bold wins over italic on double stars",
			in:   "**both**",
			want: "<strong>both</strong>",
		},
		{
			name: "plain text untouched",
			in:   "nothing special here",
			want: "nothing special here",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ProcessContent(tc.in))
		})
	}
}
