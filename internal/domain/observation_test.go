package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LooseNumber
		blank bool
	}{
		{"number", `72`, "72", false},
		{"negative float", `-1.5`, "-1.5", false},
		{"numeric string", `"98.6"`, "98.6", false},
		{"empty string", `""`, "", true},
		{"whitespace string", `"  "`, "  ", true},
		{"null", `null`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n LooseNumber
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.blank, n.IsBlank())
		})
	}
}

func TestLooseNumber_RejectsNonNumericJSON(t *testing.T) {
	var n LooseNumber
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
	assert.Error(t, json.Unmarshal([]byte(`{"v":1}`), &n))
}

func TestLooseNumber_Parse(t *testing.T) {
	f, err := LooseNumber(" 120.5 ").Float()
	require.NoError(t, err)
	assert.Equal(t, 120.5, f)

	i, err := LooseNumber("1500.9").Int()
	require.NoError(t, err)
	assert.Equal(t, 1500, i)

	_, err = LooseNumber("abc").Float()
	assert.Error(t, err)

	_, err = LooseNumber("NaN").Float()
	assert.Error(t, err)
}

func TestVitals_IsEmpty(t *testing.T) {
	assert.True(t, Vitals{}.IsEmpty())
	assert.False(t, Vitals{Weight: &Reading{Value: 150}}.IsEmpty())
}
