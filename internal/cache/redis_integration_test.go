//go:build integration

package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/types"
)

func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	r := NewRedis(t.Context(), RedisOptions{Addr: addr, TTL: time.Minute}, zap.NewNop())
	require.True(t, r.Available())
	defer func() { _ = r.Close() }()

	key := Key("cv", "jd", types.ScoreOptions{})
	in := types.ATSScoreBreakdown{FinalScore: 72.5, CategoryStatus: "Moderate fit"}
	require.NoError(t, r.SetJSON(t.Context(), key, in, 0))

	var out types.ATSScoreBreakdown
	found, err := r.GetJSON(t.Context(), key, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in.FinalScore, out.FinalScore)
	assert.Equal(t, in.CategoryStatus, out.CategoryStatus)
}
