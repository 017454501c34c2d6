package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	assert.Equal("step 3 of 4", From("step %d of %d", 3, 4))

	SetLocales("en-GB", "en-US")
	assert.Equal("tape [B X]", From("tape %v", []string{"B", "X"}))

	SetLocales(DEFAULT_LOCALE)
}
