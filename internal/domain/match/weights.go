package match

import (
	"errors"
	"math"
)

var ErrInvalidWeights = errors.New("invalid weights")

// WeightMap holds the relative weight of each category. The values need not sum to 100.
type WeightMap struct {
	Skills     float64 `json:"skills" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Education  float64 `json:"education" validate:"gte=0"`
	Additional float64 `json:"additional" validate:"gte=0"`
}

func DefaultWeights() WeightMap {
	return WeightMap{Skills: 40, Experience: 30, Education: 15, Additional: 15}
}

func (w WeightMap) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Additional
}

func (w WeightMap) values() [4]float64 {
	return [4]float64{w.Skills, w.Experience, w.Education, w.Additional}
}

// Validate rejects negative or non-finite weights and an all-zero map.
func (w WeightMap) Validate() error {
	for _, v := range w.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidWeights
		}
	}
	if w.max() <= 0 {
		return ErrInvalidWeights
	}
	return nil
}

func (w WeightMap) max() float64 {
	m := 0.0
	for _, v := range w.values() {
		m = math.Max(m, v)
	}
	return m
}

// Normalize scales the map so that its values sum to 100.
func (w WeightMap) Normalize() (WeightMap, error) {
	if err := w.Validate(); err != nil {
		return WeightMap{}, err
	}
	// Scaled by the largest weight, the sum stays within [1,4].
	m := w.max()
	scaled := WeightMap{
		Skills:     w.Skills / m,
		Experience: w.Experience / m,
		Education:  w.Education / m,
		Additional: w.Additional / m,
	}
	f := 100 / scaled.Sum()
	out := WeightMap{
		Skills:     scaled.Skills * f,
		Experience: scaled.Experience * f,
		Education:  scaled.Education * f,
		Additional: scaled.Additional * f,
	}
	for _, v := range out.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return WeightMap{}, ErrInvalidWeights
		}
	}
	return out, nil
}
