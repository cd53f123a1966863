package soil

import (
	_ "embed"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Linsley "Hydrology for Engineers" A-10
//
//go:embed data/linsley_a10.csv
var linsleyA10 []byte

// 水の粘性・密度の表の1行
type ViscosityRow struct {
	Temp   float64 `csv:"temp"`   // 温度, degree C
	Rho    float64 `csv:"rho"`    // 密度, kg/m3
	Mu     float64 `csv:"mu"`     // 粘性係数, mPa s
	Factor float64 `csv:"factor"` // Ksat の温度補正係数, -
}

var (
	viscosityOnce sync.Once
	viscosityRows []ViscosityRow
)

/*
水の粘性・密度の表を取得する。

    Returns:
        温度の昇順に並んだ表の写し

    Notes:
        埋め込みデータは初回呼び出し時に1度だけ読み込む。
*/
func ViscosityTable() []ViscosityRow {
	viscosityOnce.Do(func() {
		var pp []*ViscosityRow
		if err := gocsv.UnmarshalBytes(linsleyA10, &pp); err != nil {
			panic(fmt.Sprintf("soil: invalid viscosity table: %v", err))
		}
		if len(pp) < 2 {
			panic("soil: viscosity table needs at least 2 rows")
		}

		viscosityRows = make([]ViscosityRow, len(pp))
		for i := range pp {
			viscosityRows[i] = *pp[i]
		}
		sort.Slice(viscosityRows, func(i, j int) bool {
			return viscosityRows[i].Temp < viscosityRows[j].Temp
		})
	})

	rows := make([]ViscosityRow, len(viscosityRows))
	copy(rows, viscosityRows)
	return rows
}

/*
表を線形補間して Ksat の温度補正係数を求める。

    Args:
        temp: 温度, degree C

    Returns:
        Ksat の温度補正係数, -

    Notes:
        表の範囲外は両端の2行から外挿する。
*/
func ReferenceFactor(temp float64) float64 {
	rows := ViscosityTable()

	// 補間に使う上側の行
	i := sort.Search(len(rows), func(i int) bool { return rows[i].Temp >= temp })
	switch {
	case i == 0:
		i = 1
	case i == len(rows):
		i = len(rows) - 1
	}

	lo, hi := rows[i-1], rows[i]
	return LinearInterp(temp, lo.Temp, hi.Temp, lo.Factor, hi.Factor)
}

/*
密度と粘性係数から Ksat の温度補正係数を求める。

    Args:
        rho: 密度, kg/m3
        mu: 粘性係数, mPa s

    Returns:
        Ksat の温度補正係数, -

    Notes:
        Ksat は動粘性係数に反比例するものとし、基準温度 (20℃) の行に対する比とする。
*/
func ViscosityFactor(rho, mu float64) float64 {
	ref := referenceRow()
	return (rho / mu) / (ref.Rho / ref.Mu)
}

// 基準温度の行
func referenceRow() ViscosityRow {
	for _, row := range ViscosityTable() {
		if row.Temp == tKsatRef {
			return row
		}
	}
	panic(fmt.Sprintf("soil: viscosity table has no row at %v degree C", tKsatRef))
}

// 表の1行に対する回帰式の比較結果
type FactorComparison struct {
	Temp       float64 `csv:"temp"`
	Reference  float64 `csv:"reference"`
	Viscosity  float64 `csv:"viscosity"`
	Regression float64 `csv:"regression"`
	Residual   float64 `csv:"residual"`
}

// 回帰式の比較結果の集計
type ComparisonSummary struct {
	Rows            []FactorComparison
	MeanResidual    float64
	MeanAbsResidual float64
	RMSE            float64
	MaxAbsResidual  float64
}

/*
Ksat の温度補正係数の回帰式を表と比較する。

    Args:
        opts: モデルの設定

    Returns:
        表の各行の比較結果とその集計

    Notes:
        残差は 回帰式 - 表の値 とする。
*/
func CompareReference(opts Options) ComparisonSummary {
	rows := ViscosityTable()
	n := len(rows)

	cmp := make([]FactorComparison, n)
	reference := make([]float64, n)
	regression := make([]float64, n)
	for i, row := range rows {
		reference[i] = row.Factor
		regression[i] = KsatFactor(opts, row.Temp)
		cmp[i] = FactorComparison{
			Temp:       row.Temp,
			Reference:  row.Factor,
			Viscosity:  ViscosityFactor(row.Rho, row.Mu),
			Regression: regression[i],
		}
	}

	residual := make([]float64, n)
	floats.SubTo(residual, regression, reference)
	absResidual := make([]float64, n)
	for i := range residual {
		cmp[i].Residual = residual[i]
		absResidual[i] = math.Abs(residual[i])
	}

	return ComparisonSummary{
		Rows:            cmp,
		MeanResidual:    stat.Mean(residual, nil),
		MeanAbsResidual: stat.Mean(absResidual, nil),
		RMSE:            floats.Distance(regression, reference, 2) / math.Sqrt(float64(n)),
		MaxAbsResidual:  floats.Max(absResidual),
	}
}
