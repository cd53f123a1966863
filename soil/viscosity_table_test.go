package soil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViscosityTable(t *testing.T) {
	rows := ViscosityTable()
	require.Len(t, rows, 9)

	assert.Equal(t, ViscosityRow{Temp: 0, Rho: 999.84, Mu: 1.79, Factor: 0.560}, rows[0])
	assert.Equal(t, ViscosityRow{Temp: 40, Rho: 992.22, Mu: 0.653, Factor: 1.52}, rows[8])
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Temp, rows[i].Temp)
	}

	// callers get a copy
	rows[0].Factor = 99
	assert.Equal(t, 0.560, ViscosityTable()[0].Factor)
}

func TestReferenceFactor(t *testing.T) {
	for _, row := range ViscosityTable() {
		assert.InDelta(t, row.Factor, ReferenceFactor(row.Temp), 1e-12, "temp=%v", row.Temp)
	}

	assert.InDelta(t, 0.6095, ReferenceFactor(2.5), 1e-12)
	assert.InDelta(t, 1.0, ReferenceFactor(tKsatRef), 1e-12)

	// extrapolated from the end pairs
	assert.InDelta(t, 0.560-0.099*0.2, ReferenceFactor(-1), 1e-12)
	assert.InDelta(t, 1.52+0.13*0.4, ReferenceFactor(42), 1e-12)
}

func TestViscosityFactor(t *testing.T) {
	for _, row := range ViscosityTable() {
		assert.InDelta(t, row.Factor, ViscosityFactor(row.Rho, row.Mu), 0.01, "temp=%v", row.Temp)
	}
	assert.Equal(t, 1.0, ViscosityFactor(998.21, 1.00))
}

func TestCompareReference_Frozen(t *testing.T) {
	s := CompareReference(frozen)
	require.Len(t, s.Rows, 9)

	for _, r := range s.Rows {
		assert.InDelta(t, r.Regression-r.Reference, r.Residual, 1e-15)
		assert.InDelta(t, KsatFactor(frozen, r.Temp), r.Regression, 1e-15)
	}
	assert.Less(t, s.MaxAbsResidual, 0.06)
	assert.Less(t, s.RMSE, 0.03)
	assert.Less(t, s.MeanResidual, 0.0)
	assert.InDelta(t, 0.0172, s.MeanAbsResidual, 0.001)
	assert.LessOrEqual(t, s.MeanAbsResidual, s.RMSE)
	assert.LessOrEqual(t, s.RMSE, s.MaxAbsResidual)
}

func TestCompareReference_NotFrozen(t *testing.T) {
	s := CompareReference(Options{})

	var sq float64
	for _, r := range s.Rows {
		assert.Equal(t, 1.0, r.Regression)
		sq += r.Residual * r.Residual
	}
	assert.InDelta(t, math.Sqrt(sq/float64(len(s.Rows))), s.RMSE, 1e-12)
	assert.InDelta(t, 0.52, s.MaxAbsResidual, 1e-12)
}
