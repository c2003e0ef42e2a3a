package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVideoID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url extra params", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123", true},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url without id", "https://www.youtube.com/watch", "", false},
		{"unrelated host", "https://vimeo.com/12345", "", false},
		{"garbage", "not a url at all ://", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVideoID(tc.url)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
