package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	assert.Equal("line 3 'ADD x' unknown", From("line %d '%v' %v", 3, "ADD x", "unknown"))

	SetLocales("en-GB", "en-US")
	assert.Equal("cell 007 at 12", From("cell %v at %d", "007", 12))
}
