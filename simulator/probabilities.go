package simulator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sky-flux/sm2"
)

var (
	// ErrEmptyLogs is returned when no review logs are provided.
	ErrEmptyLogs = errors.New("simulator: no review logs provided")

	// ErrInvalidProbabilities is returned for negative or all-zero weights.
	ErrInvalidProbabilities = errors.New("simulator: invalid response probabilities")
)

// Probabilities weights the responses a simulated learner gives.
// Weights need not sum to one; they are normalized before use.
type Probabilities struct {
	Hard float64 `json:"hard" yaml:"hard"`
	Good float64 `json:"good" yaml:"good"`
	Easy float64 `json:"easy" yaml:"easy"`
}

// DefaultProbabilities models a learner who mostly answers Good.
var DefaultProbabilities = Probabilities{Hard: 0.15, Good: 0.7, Easy: 0.15}

// ProbabilitiesFromLogs returns the observed share of each response.
func ProbabilitiesFromLogs(logs []sm2.ReviewLog) (Probabilities, error) {
	if len(logs) == 0 {
		return Probabilities{}, ErrEmptyLogs
	}
	counts := map[sm2.Response]float64{}
	var total float64
	for _, log := range logs {
		if !log.Response.IsValid() {
			return Probabilities{}, fmt.Errorf("%w: card %s", sm2.ErrInvalidResponse, log.CardID)
		}
		counts[log.Response]++
		total++
	}
	return Probabilities{
		Hard: counts[sm2.Hard] / total,
		Good: counts[sm2.Good] / total,
		Easy: counts[sm2.Easy] / total,
	}, nil
}

// normalize scales the weights so they sum to one.
func (p Probabilities) normalize() (Probabilities, error) {
	if p.Hard < 0 || p.Good < 0 || p.Easy < 0 {
		return Probabilities{}, fmt.Errorf("%w: %+v", ErrInvalidProbabilities, p)
	}
	sum := p.Hard + p.Good + p.Easy
	if sum == 0 {
		return Probabilities{}, fmt.Errorf("%w: all weights are zero", ErrInvalidProbabilities)
	}
	return Probabilities{Hard: p.Hard / sum, Good: p.Good / sum, Easy: p.Easy / sum}, nil
}

// draw picks a response. p must be normalized.
func (p Probabilities) draw(rng *rand.Rand) sm2.Response {
	x := rng.Float64()
	switch {
	case x < p.Hard:
		return sm2.Hard
	case x < p.Hard+p.Good:
		return sm2.Good
	default:
		return sm2.Easy
	}
}
