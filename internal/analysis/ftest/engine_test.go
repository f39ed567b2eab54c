package ftest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestedlm/adapters/ols"
	"nestedlm/domain/core"
	"nestedlm/internal/testkit"
	"nestedlm/ports"
)

func fitReferenceModels(t *testing.T) (full, null *ols.Model) {
	t.Helper()
	result, treatment := testkit.TwoTreatmentData()

	full, err := ols.Fit(result, testkit.DesignWithIntercept(len(result), treatment))
	require.NoError(t, err)
	null, err = ols.Fit(result, testkit.InterceptOnly(len(result)))
	require.NoError(t, err)
	return full, null
}

func TestFTestReferenceScenario(t *testing.T) {
	full, null := fitReferenceModels(t)

	res, err := FTest([]ports.FittedLinearModel{full, null})
	require.NoError(t, err)

	require.Equal(t, 2, res.NumModels())
	require.Len(t, res.FStat, 1)
	require.Len(t, res.PValue, 1)

	assert.Equal(t, []int{3, 2}, res.DOF)
	assert.Equal(t, []int{10, 11}, res.ResidualDOF)

	assert.InDelta(t, 0.1283, res.SSR[0], 5e-5)
	assert.InDelta(t, 3.2292, res.SSR[1], 5e-5)
	assert.InDelta(t, 0.9603, res.R2[0], 5e-5)
	assert.InDelta(t, 0.0, res.R2[1], 1e-12)

	assert.InDelta(t, 241.6234, res.FStat[0], 5e-5)
	assert.Greater(t, res.PValue[0], 0.0)
	assert.Less(t, res.PValue[0], 1e-7)
}

func TestFTestOrderPreserved(t *testing.T) {
	full, null := fitReferenceModels(t)

	res, err := FTest([]ports.FittedLinearModel{full, null})
	require.NoError(t, err)

	assert.Equal(t, full.Deviance(), res.SSR[0])
	assert.Equal(t, null.Deviance(), res.SSR[1])
	assert.Equal(t, full.RSquared(), res.R2[0])
	assert.Equal(t, null.RSquared(), res.R2[1])
}

func TestFTestThreeModelSequence(t *testing.T) {
	result, treatment := testkit.TwoTreatmentData()
	other := []float64{1, 1, 2, 1, 2, 1, 3, 1, 1, 2, 2, 1}

	big, err := ols.Fit(result, testkit.DesignWithIntercept(len(result), treatment, other))
	require.NoError(t, err)
	mid, err := ols.Fit(result, testkit.DesignWithIntercept(len(result), treatment))
	require.NoError(t, err)
	null, err := ols.Fit(result, testkit.InterceptOnly(len(result)))
	require.NoError(t, err)

	res, err := FTest([]ports.FittedLinearModel{big, mid, null})
	require.NoError(t, err)

	require.Equal(t, 3, res.NumModels())
	require.Len(t, res.FStat, 2)
	require.Len(t, res.PValue, 2)

	// SSR can only grow as predictors are removed.
	assert.LessOrEqual(t, res.SSR[0], res.SSR[1])
	assert.LessOrEqual(t, res.SSR[1], res.SSR[2])
	for i, p := range res.PValue {
		assert.GreaterOrEqual(t, p, 0.0, "pval %d", i)
		assert.LessOrEqual(t, p, 1.0, "pval %d", i)
	}
}

func TestFTestRejectsSingleModel(t *testing.T) {
	full, _ := fitReferenceModels(t)

	_, err := FTest([]ports.FittedLinearModel{full})
	require.Error(t, err)
	assert.True(t, core.IsInvalidArity(err))
}

func TestFTestRejectsNonNestedSequence(t *testing.T) {
	full, null := fitReferenceModels(t)

	// Increasing complexity: model 2 has a predictor absent from model 1.
	_, err := FTest([]ports.FittedLinearModel{null, full})
	require.Error(t, err)
	assert.True(t, core.IsNestingViolation(err))
	assert.Contains(t, err.Error(), "model 2")
	assert.Contains(t, err.Error(), "model 1")
}

func TestFTestDegenerateIdenticalModels(t *testing.T) {
	full, _ := fitReferenceModels(t)

	res, err := FTest([]ports.FittedLinearModel{full, full})
	require.NoError(t, err, "identical models are degenerate, not invalid")

	require.Len(t, res.FStat, 1)
	assert.False(t, isFinite(res.FStat[0]), "zero parameter delta must give a non-finite F")
	assert.True(t, math.IsNaN(res.PValue[0]))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func TestFSurvivalBounds(t *testing.T) {
	assert.InDelta(t, 1.0, FSurvival(1, 10, 0), 1e-12)
	// F(1,1) has CDF(1) = 0.5 exactly.
	assert.InDelta(t, 0.5, FSurvival(1, 1, 1), 1e-10)
	assert.Less(t, FSurvival(1, 10, 100), 1e-4)
	assert.Greater(t, FSurvival(1, 10, 100), 0.0)
	assert.True(t, math.IsNaN(FSurvival(0, 10, 1)))
	assert.True(t, math.IsNaN(FSurvival(1, 0, 1)))
	assert.True(t, math.IsNaN(FSurvival(1, 10, math.NaN())))
	assert.True(t, math.IsNaN(FSurvival(1, 10, math.Inf(1))))
}
