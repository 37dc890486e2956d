package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{Input: []int{3, 4}}

	var port Port = q

	value, err := port.RequestInteger()
	assert.NoError(err)
	assert.Equal(3, value)

	value, err = port.RequestInteger()
	assert.NoError(err)
	assert.Equal(4, value)

	_, err = port.RequestInteger()
	assert.ErrorIs(err, ErrQueueEmpty)

	assert.NoError(port.EmitInteger(7))
	assert.NoError(port.EmitInteger(0))
	assert.Equal([]int{7, 0}, q.Output)
}
