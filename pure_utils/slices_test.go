package pure_utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type color string

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"red", "blue"}, Strings([]color{"red", "blue"}))
	assert.Equal(t, []string{}, Strings[color](nil))
}

func TestEmptyIfNil(t *testing.T) {
	encoded, err := json.Marshal(EmptyIfNil[int](nil))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))

	assert.Equal(t, []int{1, 2}, EmptyIfNil([]int{1, 2}))
}
