package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runger/pickline/internal/record"
)

func TestApply_Substring(t *testing.T) {
	s := record.NewStore([]string{"axb", "yyy", "xzz"}, "")
	assert.Equal(t, []record.GroundIndex{0, 2}, Apply(s, nil, "x"))
}

func TestApply_CaseSensitive(t *testing.T) {
	s := record.NewStore([]string{"Abc", "abc"}, "")
	assert.Equal(t, []record.GroundIndex{1}, Apply(s, nil, "a"))
}

func TestApply_EmptyMatchesAll(t *testing.T) {
	s := record.NewStore([]string{"a", "b", "c"}, "")
	assert.Equal(t, []record.GroundIndex{0, 1, 2}, Apply(s, nil, ""))
}

func TestApply_RoundTrip(t *testing.T) {
	s := record.NewStore([]string{"one", "two", "three"}, "")
	all := Apply(s, nil, "")

	assert.Equal(t, []record.GroundIndex{1, 2}, Apply(s, nil, "t"))
	assert.Equal(t, all, Apply(s, nil, ""))
}

func TestApply_Idempotent(t *testing.T) {
	s := record.NewStore([]string{"ab", "ba", "cc"}, "")
	assert.Equal(t, Apply(s, nil, "a"), Apply(s, nil, "a"))
}

func TestApply_OnlyDisplayColumns(t *testing.T) {
	s := record.NewStore([]string{"hidden,shown", "x,y"}, ",")
	assert.Empty(t, Apply(s, record.Closed(1), "hidden"))
	assert.Equal(t, []record.GroundIndex{0}, Apply(s, record.Closed(1), "shown"))
}

func TestApply_NoMatches(t *testing.T) {
	s := record.NewStore([]string{"a"}, "")
	got := Apply(s, nil, "zzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
