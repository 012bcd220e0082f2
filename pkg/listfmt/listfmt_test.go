package listfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/boundedkit/pkg/linearlist"
)

func TestSprint(t *testing.T) {
	l, err := linearlist.New(4)
	require.NoError(t, err)
	assert.Equal(t, "list is empty\n", Sprint(l))

	for _, k := range []int{3, -1, 7} {
		_, err := l.Insert(k)
		require.NoError(t, err)
	}
	assert.Equal(t, "3->-1->7\n", Sprint(l))

	_, err = l.Remove(3)
	require.NoError(t, err)
	_, err = l.Remove(7)
	require.NoError(t, err)
	assert.Equal(t, "-1\n", Sprint(l))
}

func TestSprintMissingList(t *testing.T) {
	assert.Equal(t, "list does not exist\n", Sprint(nil))

	var l *linearlist.List
	assert.Equal(t, "list does not exist\n", Sprint(l))
}

func TestFprint(t *testing.T) {
	l, err := linearlist.New(2)
	require.NoError(t, err)
	_, _ = l.InsertSorted(9)
	_, _ = l.InsertSorted(4)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, l))
	assert.Equal(t, "4->9\n", buf.String())
}
