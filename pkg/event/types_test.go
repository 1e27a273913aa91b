package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChange_WireShape(t *testing.T) {
	c := NewChange("billing", ActionCreated, "12")

	payload, err := json.Marshal(c)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Equal(t, "billing", fields["resource"])
	assert.Equal(t, "created", fields["action"])
	assert.Equal(t, "12", fields["id"])
	assert.Contains(t, fields, "at")
	assert.Len(t, fields, 4)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.ErrorContains(t, err, "failed to decode change event")
}

func TestChange_String(t *testing.T) {
	assert.Equal(t, "doctor deleted 4", Change{Resource: "doctor", Action: ActionDeleted, ID: "4"}.String())
}
