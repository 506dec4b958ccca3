package cache

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/fit-scorer/internal/types"
)

func TestKey(t *testing.T) {
	opts := types.ScoreOptions{YearsExperience: 3, ComponentScores: map[string]float64{"a": 1, "b": 2}}

	k1 := Key("cv", "jd", opts)
	k2 := Key("cv", "jd", types.ScoreOptions{YearsExperience: 3, ComponentScores: map[string]float64{"b": 2, "a": 1}})
	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, KeyPrefix))
	assert.Len(t, k1, len(KeyPrefix)+64)

	assert.NotEqual(t, k1, Key("cv", "jd", types.ScoreOptions{YearsExperience: 4}))
	assert.NotEqual(t, Key("cv", "jd", types.ScoreOptions{}), Key("cvj", "d", types.ScoreOptions{}))
	assert.NotContains(t, Key("confidential cv", "jd", opts), "confidential")
}

func TestKey_UnencodableOptions(t *testing.T) {
	nan := map[string]float64{"technical_depth": math.NaN()}

	assert.Empty(t, Key("cv", "jd", types.ScoreOptions{CompanyInfo: "hospital", ComponentScores: nan}))
	assert.Empty(t, Key("cv", "jd", types.ScoreOptions{CompanyInfo: "bank", YearsExperience: 12, ComponentScores: nan}))

	sanitized := types.ScoreOptions{CompanyInfo: "bank", ComponentScores: nan}.Sanitized()
	assert.NotEmpty(t, Key("cv", "jd", sanitized))
	assert.NotEqual(t, Key("cv", "jd", sanitized), Key("cv", "jd", types.ScoreOptions{CompanyInfo: "hospital"}))
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	require.NoError(t, c.SetJSON(t.Context(), "k", 1, time.Minute))
	var out int
	found, err := c.GetJSON(t.Context(), "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_BypassesWhenUnavailable(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	r := NewRedis(t.Context(), RedisOptions{Addr: "127.0.0.1:1", PingTimeout: 200 * time.Millisecond}, zap.New(core))

	assert.False(t, r.Available())
	assert.Equal(t, 1, observed.FilterMessage("redis unavailable, bypassing cache").Len())

	require.NoError(t, r.SetJSON(t.Context(), "k", map[string]int{"a": 1}, 0))
	var out map[string]int
	found, err := r.GetJSON(t.Context(), "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, r.Close())
}
