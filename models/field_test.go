package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_LookupNames(t *testing.T) {
	derived := Field{Name: "host", EnvNames: []string{"host", "hostname"}}
	explicit := Field{Name: "host", EnvNames: []string{"host"}, ExplicitEnvNames: []string{"DB_HOST"}}

	assert.Equal(t, []string{"db__host", "db__hostname"}, derived.LookupNames("db__"))
	assert.Equal(t, []string{"DB_HOST"}, explicit.LookupNames("db__"))
}

func TestField_HasExplicitEnv(t *testing.T) {
	assert.False(t, Field{}.HasExplicitEnv())
	assert.True(t, Field{ExplicitEnvNames: []string{}}.HasExplicitEnv())
	assert.Empty(t, Field{EnvNames: []string{"a"}, ExplicitEnvNames: []string{}}.LookupNames(""))
}

func TestField_JSONKeepsExplicitEnvPresence(t *testing.T) {
	tests := []struct {
		name         string
		explicit     []string
		wantExplicit bool
	}{
		{name: "absent", explicit: nil, wantExplicit: false},
		{name: "empty", explicit: []string{}, wantExplicit: true},
		{name: "set", explicit: []string{"DB_HOST"}, wantExplicit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			in := Field{Name: "host", Alias: "host", EnvNames: []string{"host"}, ExplicitEnvNames: tt.explicit}

			// Act
			data, err := json.Marshal(in)
			require.NoError(t, err)
			var out Field
			require.NoError(t, json.Unmarshal(data, &out))

			// Assert
			assert.Equal(t, tt.wantExplicit, out.HasExplicitEnv())
			assert.Equal(t, in.LookupNames("p_"), out.LookupNames("p_"))
		})
	}
}
