package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeField(t *testing.T, raw string) Field {
	t.Helper()
	var f Field
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return f
}

func TestField_Truthy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`null`, false},
		{`""`, false},
		{`0`, false},
		{`0.0`, false},
		{`false`, false},
		{`"0"`, true},
		{`" "`, true},
		{`30`, true},
		{`-1`, true},
		{`true`, true},
		{`"Jane"`, true},
		{`{}`, true},
		{`[]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeField(t, tt.raw).Truthy())
		})
	}
}

func TestField_AbsentIsNil(t *testing.T) {
	var req PatientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane Doe"}`), &req))

	assert.Nil(t, req.Age.Value())
	assert.False(t, req.Age.Truthy())
	assert.Nil(t, req.Phone.OrNull())
}

func TestField_KeepsNumbersExact(t *testing.T) {
	f := decodeField(t, `9007199254740993`)
	assert.Equal(t, json.Number("9007199254740993"), f.Value())
	assert.Equal(t, "9007199254740993", f.String())
}

func TestField_Coalesce(t *testing.T) {
	first := decodeField(t, `"a"`)
	second := decodeField(t, `"b"`)
	empty := decodeField(t, `""`)

	assert.Equal(t, "a", first.Coalesce(second).Value())
	assert.Equal(t, "b", empty.Coalesce(second).Value())
	assert.Nil(t, empty.Coalesce(Field{}).Value())
	// both falsy: the second one wins, even if it is itself falsy
	assert.Equal(t, "", Field{}.Coalesce(empty).Value())
}

func TestField_TrimmedOrNull(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"blank", `"   "`, nil},
		{"empty", `""`, nil},
		{"missing", `null`, nil},
		{"padded", `"  12B "`, "12B"},
		{"number", `101`, "101"},
		{"zero", `0`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeField(t, tt.raw).TrimmedOrNull())
		})
	}
}

func TestField_MarshalRoundTrip(t *testing.T) {
	f := decodeField(t, `"x"`)
	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(out))
}
