package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.70, cfg.Thresholds.SemanticSimilarity)
	assert.Equal(t, 0.90, cfg.Thresholds.MetricPreservation)
	assert.Equal(t, 0.08, cfg.Thresholds.KeywordDensityMax)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 25, cfg.MaxWords)
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := Default().Weights
	sum := w.SemanticAlignment + w.SkillMatch + w.MetricPreservation +
		w.ActionVerbStrength + w.ATSReadability + w.KeywordDensity
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg := Default()
	cfg.Weights.SemanticAlignment = 0.5 // now sums to 1.15
	assert.Error(t, cfg.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Thresholds, cfg.Thresholds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestLoadMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_attempts": 5, "thresholds": {"readability": 50}}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 50.0, cfg.Thresholds.Readability)
	// Untouched threshold keeps its default.
	assert.Equal(t, 0.70, cfg.Thresholds.SemanticSimilarity)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestVerbMatrixCoversAllRolesAndLevels(t *testing.T) {
	matrix := defaultVerbMatrix()
	roles := []types.RoleType{
		types.RoleBackend, types.RoleFrontend, types.RoleFullStack,
		types.RoleDevOps, types.RoleMLAI, types.RoleDataEngineer,
		types.RoleMobile, types.RoleGeneral,
	}
	levels := []types.SeniorityLevel{
		types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior,
		types.SeniorityLead, types.SeniorityPrincipal,
	}

	for _, role := range roles {
		for _, level := range levels {
			assert.NotEmpty(t, matrix.VerbsFor(role, level), "role=%s level=%s", role, level)
		}
	}
}

func TestVerbMatrixFallbacks(t *testing.T) {
	matrix := defaultVerbMatrix()

	// Unknown role falls back to the general column.
	verbs := matrix.VerbsFor(types.RoleType("unknown"), types.SeniorityMid)
	assert.Equal(t, matrix[types.RoleGeneral][types.SeniorityMid], verbs)

	// Unknown seniority falls back to mid.
	verbs = matrix.VerbsFor(types.RoleBackend, types.SeniorityLevel("unknown"))
	assert.Equal(t, matrix[types.RoleBackend][types.SeniorityMid], verbs)
}

func TestVerbMatrixContains(t *testing.T) {
	matrix := defaultVerbMatrix()
	assert.True(t, matrix.Contains(types.RoleBackend, types.SenioritySenior, "architected"))
	assert.True(t, matrix.Contains(types.RoleBackend, types.SenioritySenior, "Spearheaded"))
	assert.False(t, matrix.Contains(types.RoleBackend, types.SenioritySenior, "helped"))
}
