package record

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	fields := []string{"f0", "f1", "f2", "f3", "f4"}

	tests := []struct {
		name string
		rng  *ColumnRange
		want []string
	}{
		{"nil range", nil, fields},
		{"open tail", Open(2), []string{"f2", "f3", "f4"}},
		{"closed", Closed(0, 2), []string{"f0", "f2"}},
		{"closed keeps order", Closed(3, 1), []string{"f3", "f1"}},
		{"closed duplicates", Closed(1, 1), []string{"f1", "f1"}},
		{"closed skips out of range", Closed(1, 9), []string{"f1"}},
		{"open with leading", Open(0, 3), []string{"f0", "f3", "f4"}},
		{"open anchors on max", Open(3, 1), []string{"f3", "f1", "f4"}},
		{"open empty", Open(), []string{}},
		{"open past end", Open(7), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(fields, tt.rng))
		})
	}
}

func TestProject_DoesNotAliasInput(t *testing.T) {
	fields := []string{"a", "b"}
	out := Project(fields, nil)
	out[0] = "z"
	assert.Equal(t, "a", fields[0])
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a,b", Join([]string{"a", "b"}, ","))
	assert.Equal(t, "ab", Join([]string{"a", "b"}, ""))
	assert.Equal(t, "", Join(nil, ","))
}

func TestNew(t *testing.T) {
	r := New("a:b:c", ":")
	assert.Equal(t, "a:b:c", r.Raw)
	assert.Equal(t, []string{"a", "b", "c"}, r.Fields)

	r = New("a:b:c", "")
	assert.Equal(t, []string{"a:b:c"}, r.Fields)
}

func TestStore_ToggleIdempotence(t *testing.T) {
	s := NewStore([]string{"a", "b", "c"}, "")

	for i := GroundIndex(0); i < 3; i++ {
		before := s.IsSelected(i)
		s.Toggle(i)
		assert.NotEqual(t, before, s.IsSelected(i))
		s.Toggle(i)
		assert.Equal(t, before, s.IsSelected(i))
	}
}

func TestStore_ToggleIgnoresInvalid(t *testing.T) {
	s := NewStore([]string{"a"}, "")
	s.Toggle(-1)
	s.Toggle(1)
	assert.Equal(t, 0, s.SelectedCount())
	assert.Empty(t, s.Selected())
}

func TestStore_SelectedIsGroundOrdered(t *testing.T) {
	s := NewStore([]string{"a", "b", "c", "d"}, "")
	s.Toggle(3)
	s.Toggle(0)
	s.Toggle(2)
	assert.Equal(t, []GroundIndex{0, 2, 3}, s.Selected())
}

func TestStore_Output(t *testing.T) {
	s := NewStore([]string{"a,b,c"}, ",")
	assert.Equal(t, "a,b,c", s.Output(0, nil))
	assert.Equal(t, "c,a", s.Output(0, Closed(2, 0)))
	assert.Equal(t, "b,c", s.Output(0, Open(1)))
	assert.Equal(t, "", s.Output(5, nil))
}

func TestStore_Display(t *testing.T) {
	s := NewStore([]string{"a b c"}, " ")
	assert.Equal(t, []string{"b"}, s.Display(0, Closed(1)))
	assert.Nil(t, s.Display(1, nil))
}

func TestStore_FindFirst(t *testing.T) {
	s := NewStore([]string{"x| ", "y|*", "z|*"}, "|")

	i, ok := s.FindFirst(1, regexp.MustCompile(`\S`))
	require.True(t, ok)
	assert.Equal(t, GroundIndex(1), i)

	_, ok = s.FindFirst(5, regexp.MustCompile(`\S`))
	assert.False(t, ok)

	_, ok = s.FindFirst(0, nil)
	assert.False(t, ok)
}

func TestStore_ColumnWidths(t *testing.T) {
	s := NewStore([]string{"ab,c", "a,日本"}, ",")
	assert.Equal(t, []int{2, 4}, s.ColumnWidths(nil, nil))
	assert.Equal(t, []int{4}, s.ColumnWidths(Closed(1), nil))

	count := func(f string) int { return len(f) }
	assert.Equal(t, []int{2, 6}, s.ColumnWidths(nil, count))
}
