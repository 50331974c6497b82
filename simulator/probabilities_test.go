package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sky-flux/sm2"
)

func TestProbabilitiesFromLogs(t *testing.T) {
	logs := []sm2.ReviewLog{
		{CardID: "a", Response: sm2.Good, ReviewedAt: t0},
		{CardID: "a", Response: sm2.Hard, ReviewedAt: t0},
		{CardID: "b", Response: sm2.Good, ReviewedAt: t0},
		{CardID: "c", Response: sm2.Easy, ReviewedAt: t0},
	}
	p, err := ProbabilitiesFromLogs(logs)
	require.NoError(t, err)
	assert.Equal(t, Probabilities{Hard: 0.25, Good: 0.5, Easy: 0.25}, p)
}

func TestProbabilitiesFromLogsErrors(t *testing.T) {
	_, err := ProbabilitiesFromLogs(nil)
	assert.ErrorIs(t, err, ErrEmptyLogs)

	_, err = ProbabilitiesFromLogs([]sm2.ReviewLog{{CardID: "a"}})
	assert.ErrorIs(t, err, sm2.ErrInvalidResponse)
}

func TestNormalize(t *testing.T) {
	p, err := Probabilities{Hard: 1, Good: 2, Easy: 1}.normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, p.Hard, 1e-9)
	assert.InDelta(t, 0.5, p.Good, 1e-9)
	assert.InDelta(t, 0.25, p.Easy, 1e-9)

	_, err = Probabilities{}.normalize()
	assert.ErrorIs(t, err, ErrInvalidProbabilities)
}

func TestDrawFollowsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	only := Probabilities{Good: 1}
	for i := 0; i < 50; i++ {
		assert.Equal(t, sm2.Good, only.draw(rng))
	}

	counts := map[sm2.Response]int{}
	p := Probabilities{Hard: 0.2, Good: 0.5, Easy: 0.3}
	for i := 0; i < 10000; i++ {
		counts[p.draw(rng)]++
	}
	assert.InDelta(t, 2000, counts[sm2.Hard], 300)
	assert.InDelta(t, 5000, counts[sm2.Good], 300)
	assert.InDelta(t, 3000, counts[sm2.Easy], 300)
}
