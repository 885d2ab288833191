package discard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pjson "github.com/mcvoid/pjson"
	"github.com/mcvoid/pjson/discard"
)

func TestValid(t *testing.T) {
	assert.True(t, discard.Valid([]byte(`{"a": [1, 2, 3]}`), 0))
	assert.False(t, discard.Valid([]byte(`{"a": }`), 0))
}

func TestValid_Extensions(t *testing.T) {
	assert.False(t, discard.Valid([]byte(`{"a": 1,}`), 0))
	assert.True(t, discard.Valid([]byte(`{"a": 1,}`), pjson.ObjectTrailingComma))
}
