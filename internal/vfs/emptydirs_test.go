package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyDirs(t *testing.T) {
	r := NewEmptyDirs(ParsePath("b"), ParsePath("a/x"), ParsePath("b"), Root())

	assert.Len(t, r.Paths(), 2)
	assert.True(t, r.Contains(ParsePath("b")))
	assert.True(t, r.Contains(ParsePath("a/x")))
	assert.False(t, r.Contains(ParsePath("a")))
	assert.False(t, r.Contains(Root()))

	paths := r.Paths()
	assert.Equal(t, "a/x", paths[0].String())
	assert.Equal(t, "b", paths[1].String())
}

func TestEmptyDirs_NilIsEmpty(t *testing.T) {
	var r *EmptyDirs
	assert.Empty(t, r.Paths())
	assert.False(t, r.Contains(ParsePath("a")))
	assert.Nil(t, r.Paths())
}
