package linkcheck_test

import (
	"secondchance/internal/linkcheck"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "http with path", in: "http://a.com/x/y", out: "a.com"},
		{name: "https bare", in: "https://b.org", out: "b.org"},
		{name: "no scheme", in: "c.net/path?q=1", out: "c.net"},
		{name: "host only", in: "good.example", out: "good.example"},
		{name: "keeps port and case", in: "https://Example.COM:8443/", out: "Example.COM:8443"},
		{name: "http then https", in: "http://https://d.io/z", out: "d.io"},
		{name: "scheme is case sensitive", in: "HTTP://e.com/", out: "HTTP:"},
		{name: "other scheme", in: "ftp://f.com/file", out: "ftp:"},
		{name: "only scheme", in: "https://", out: ""},
		{name: "leading slash", in: "/relative", out: ""},
		{name: "empty", in: "", out: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := linkcheck.Normalize(tc.in)
			require.Equal(t, tc.out, got)
			require.Equal(t, got, linkcheck.Normalize(got), "normalize must be idempotent")
		})
	}
}
