package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSummarizationConfigDisabled(t *testing.T) {
	tests := []struct {
		name     string
		cfg      SummarizationConfig
		disabled bool
	}{
		{"nil enabled means default-on", SummarizationConfig{}, false},
		{"explicit true", SummarizationConfig{Enabled: BoolPtr(true)}, false},
		{"explicit false", SummarizationConfig{Enabled: BoolPtr(false)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.disabled, tt.cfg.SummarizationDisabled())
		})
	}
}

func TestMaskingPatternEnabled(t *testing.T) {
	assert.True(t, (&MaskingPattern{}).PatternEnabled())
	assert.True(t, (&MaskingPattern{Enabled: BoolPtr(true)}).PatternEnabled())
	assert.False(t, (&MaskingPattern{Enabled: BoolPtr(false)}).PatternEnabled())
}

func TestTransportConfigYAML(t *testing.T) {
	data := `
type: stdio
command: npx
args: ["-y", "some-mcp-server"]
env:
  KUBECONFIG: "${KUBECONFIG}"
`
	var tc TransportConfig
	require.NoError(t, yaml.Unmarshal([]byte(data), &tc))

	assert.Equal(t, TransportTypeStdio, tc.Type)
	assert.Equal(t, "npx", tc.Command)
	assert.Equal(t, []string{"-y", "some-mcp-server"}, tc.Args)
	assert.Equal(t, "${KUBECONFIG}", tc.Env["KUBECONFIG"])
}

func TestMaskingConfigYAML(t *testing.T) {
	data := `
enabled: true
pattern_groups: [basic, kubernetes]
patterns: [email]
custom_patterns:
  - name: internal_id
    pattern: "ID-[0-9]{8}"
    replacement: "__MASKED_ID__"
    description: "Internal ticket IDs"
`
	var mc MaskingConfig
	require.NoError(t, yaml.Unmarshal([]byte(data), &mc))

	assert.True(t, mc.Enabled)
	assert.Equal(t, []string{"basic", "kubernetes"}, mc.PatternGroups)
	assert.Equal(t, []string{"email"}, mc.Patterns)
	require.Len(t, mc.CustomPatterns, 1)
	assert.Equal(t, "internal_id", mc.CustomPatterns[0].Name)
	assert.Equal(t, "__MASKED_ID__", mc.CustomPatterns[0].Replacement)
	assert.True(t, mc.CustomPatterns[0].PatternEnabled())
}

func TestStageConfigYAML(t *testing.T) {
	data := `
stage_id: investigation
agent: KubernetesAgent
iteration_strategy: react-tools
llm_provider: fast-provider
mcp_servers: [kubernetes-server]
max_iterations: 10
`
	var sc StageConfig
	require.NoError(t, yaml.Unmarshal([]byte(data), &sc))

	assert.Equal(t, "investigation", sc.Name)
	assert.Equal(t, "KubernetesAgent", sc.Agent)
	assert.Equal(t, IterationStrategyReactTools, sc.IterationStrategy)
	assert.Equal(t, "fast-provider", sc.LLMProvider)
	assert.Equal(t, []string{"kubernetes-server"}, sc.MCPServers)
	require.NotNil(t, sc.MaxIterations)
	assert.Equal(t, 10, *sc.MaxIterations)
}
