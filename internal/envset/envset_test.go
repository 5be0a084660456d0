package envset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	dserrors "github.com/naoray/ds/internal/errors"
)

func TestUnmarshalYAML_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Def
	}{
		{
			name:     "bare dotenv path",
			input:    `".env.dev"`,
			expected: Def{Path: ".env.dev"},
		},
		{
			name:  "full mapping",
			input: "path: .env\nvars:\n  ENVIRONMENT: production\ncommand_prefix: dotenv --",
			expected: Def{
				Path:          ".env",
				Vars:          map[string]string{"ENVIRONMENT": "production"},
				CommandPrefix: "dotenv --",
			},
		},
		{
			name:     "vars only",
			input:    "vars:\n  DEBUG: \"1\"",
			expected: Def{Vars: map[string]string{"DEBUG": "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var def Def
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &def))
			assert.Equal(t, tt.expected, def)
		})
	}
}

func TestUnmarshalYAML_RejectsSequence(t *testing.T) {
	var def Def
	err := yaml.Unmarshal([]byte("- a\n- b"), &def)
	assert.Error(t, err)
}

func TestMaterialize_VarsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env.dev")
	require.NoError(t, os.WriteFile(envFile, []byte("ENVIRONMENT=dev\nPORT=8080\n"), 0644))

	def := &Def{
		Path: ".env.dev",
		Vars: map[string]string{"ENVIRONMENT": "overridden"},
	}

	vars, err := def.Materialize(filepath.Join(dir, "ds.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, "overridden", vars["ENVIRONMENT"])
	assert.Equal(t, "8080", vars["PORT"])
}

func TestMaterialize_VarsOnly(t *testing.T) {
	def := &Def{Vars: map[string]string{"ENVIRONMENT": "production"}}

	vars, err := def.Materialize("/nowhere/ds.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ENVIRONMENT": "production"}, vars)
}

func TestMaterialize_MissingFile(t *testing.T) {
	def := &Def{Path: ".env.missing"}

	_, err := def.Materialize(filepath.Join(t.TempDir(), "ds.yaml"), "")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	dev := &Def{Path: ".env.dev"}
	prod := &Def{Vars: map[string]string{"ENVIRONMENT": "production"}}
	envs := map[string]*Def{"dev": dev, "prod": prod}

	tests := []struct {
		name         string
		envs         map[string]*Def
		defaultName  string
		args         []string
		expectedDef  *Def
		expectedName string
		expectedRest []string
		expectedErr  error
	}{
		{
			name:         "no envs passes args through",
			envs:         nil,
			args:         []string{"--flag"},
			expectedRest: []string{"--flag"},
		},
		{
			name:         "first arg consumed",
			envs:         envs,
			args:         []string{"prod", "--extra-flag"},
			expectedDef:  prod,
			expectedName: "prod",
			expectedRest: []string{"--extra-flag"},
		},
		{
			name:         "default when first arg is not an env",
			envs:         envs,
			defaultName:  "dev",
			args:         []string{"--extra-flag"},
			expectedDef:  dev,
			expectedName: "dev",
			expectedRest: []string{"--extra-flag"},
		},
		{
			name:         "default when no args remain",
			envs:         envs,
			defaultName:  "prod",
			args:         nil,
			expectedDef:  prod,
			expectedName: "prod",
		},
		{
			name:        "no args and no default",
			envs:        envs,
			args:        nil,
			expectedErr: dserrors.ErrNoEnvironment,
		},
		{
			name:        "unknown env and no default",
			envs:        envs,
			args:        []string{"staging"},
			expectedErr: dserrors.ErrUnknownEnvironment,
		},
		{
			name:        "default names a missing env",
			envs:        envs,
			defaultName: "staging",
			args:        []string{"--flag"},
			expectedErr: dserrors.ErrDefaultEnvMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, name, rest, err := Match(tt.envs, tt.defaultName, tt.args)
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDef, def)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedRest, rest)
		})
	}
}
