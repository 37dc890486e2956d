package internal

import (
	"cmp"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"A": 1}
	b := map[string]int{"B": 2, "C": 3}

	got := map[string]int{}
	for k, v := range IterSeq2Concat(maps.All(a), maps.All(b)) {
		got[k] = v
	}
	assert.Equal(map[string]int{"A": 1, "B": 2, "C": 3}, got)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"LOOP": 4, "ONE": 9, "START": 0}

	var names []string
	byValue := func(_ string, a int, _ string, b int) int { return cmp.Compare(a, b) }
	for k := range IterSeq2Sorted(maps.All(m), byValue) {
		names = append(names, k)
	}
	assert.Equal([]string{"START", "LOOP", "ONE"}, names)
}
