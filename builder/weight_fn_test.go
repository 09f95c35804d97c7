package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sixdegrees/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_nan", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"ConstantWeightFn_inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(1)) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn, including
// the DefaultEdgeWeight fallback on a nil RNG.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))

	uni := builder.UniformWeightFn(3, 7)
	assert.Equal(t, builder.DefaultEdgeWeight, uni(nil))
	for i := 0; i < 100; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 3.0)
		assert.Less(t, w, 7.0)
	}
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))

	norm := builder.NormalWeightFn(0, 5)
	assert.Equal(t, builder.DefaultEdgeWeight, norm(nil))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, norm(rng), 0.0)
	}

	exp := builder.ExponentialWeightFn(2)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}
}
