package view

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ib-77/over/pkg/over"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_DerefLength(t *testing.T) {
	t.Parallel()

	s := NewText("Hello, world!")
	n := over.OverDeref(s, func(s string) int { return len(s) })

	assert.Equal(t, 13, n)
	assert.Equal(t, "Hello, world!", s.String())
}

func TestText_DerefMatchesDirectCall(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "héllo", "日本語"} {
		s := NewText(raw)
		assert.Equal(t, utf8.RuneCountInString(s.Deref()), over.OverDeref(s, utf8.RuneCountInString))
	}
}

func TestBox_DerefAndMutate(t *testing.T) {
	t.Parallel()

	b := NewBox(5)
	doubled := over.OverDeref(b, func(n int) int { return n * 2 })
	assert.Equal(t, 10, doubled)
	assert.Equal(t, 5, b.Unbox())

	over.OverDerefMut(b, func(n *int) { *n = *n*3 + 1 })
	assert.Equal(t, 16, b.Unbox())
	assert.Equal(t, 16, b.Deref())
}

func TestBox_StructValue(t *testing.T) {
	t.Parallel()

	type user struct{ Name string }
	b := NewBox(user{Name: "ada"})

	over.OverDerefMut(b, func(u *user) { u.Name = strings.ToUpper(u.Name) })
	assert.Equal(t, "ADA", b.Deref().Name)
}

func TestVec_DerefSharesStorage(t *testing.T) {
	t.Parallel()

	v := NewVec(1, 2, 3)
	over.OverDeref(v, func(s []int) over.Unit {
		s[0] = 100
		return over.Unit{}
	})
	assert.Equal(t, []int{100, 2, 3}, v.Deref())
}

func TestVec_DerefMutGrows(t *testing.T) {
	t.Parallel()

	v := NewVec[string]()
	require.Equal(t, 0, v.Len())

	over.OverDerefMut(v, func(s *[]string) { *s = append(*s, "a", "b") })
	v.Push("c")

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"a", "b", "c"}, v.Deref())
}

func TestVec_NewVecCopiesArgs(t *testing.T) {
	t.Parallel()

	src := []int{1, 2}
	v := NewVec(src...)
	src[0] = 9

	assert.Equal(t, []int{1, 2}, v.Deref())
}

func TestVec_DerefMutWithSum(t *testing.T) {
	t.Parallel()

	v := NewVec(1, 2, 3)
	sum := over.OverDerefMutWith(v, func(s *[]int) int {
		total := 0
		for i := range *s {
			(*s)[i] *= 2
			total += (*s)[i]
		}
		return total
	})

	assert.Equal(t, 12, sum)
	assert.Equal(t, []int{2, 4, 6}, v.Deref())
}

func TestBox_UnboxKeepsBoxUsable(t *testing.T) {
	t.Parallel()

	b := NewBox([]string{"a"})
	got := b.Unbox()

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, []string{"a"}, b.Deref())

	over.OverDerefMut(b, func(s *[]string) { *s = append(*s, "b") })
	assert.Equal(t, []string{"a", "b"}, b.Unbox())
}
