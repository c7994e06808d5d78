package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaper(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "alice", want: "alice"},
		{name: "percent escaped", in: "100%", want: `100\%`},
		{name: "underscore escaped", in: "snake_case", want: `snake\_case`},
		{name: "backslash escaped first", in: `a\b`, want: `a\\b`},
		{name: "mixed metacharacters", in: `\%_`, want: `\\\%\_`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, likeEscaper.Replace(tc.in))
		})
	}
}
