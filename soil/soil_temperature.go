package soil

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

/*
地中温度の節点温度の初期値を求める。

    Args:
        depths: 節点の深さ, m, [i]
        surfTemp: 地表面温度, degree C
        deepTemp: 深部の温度 (年平均気温など), degree C
        dampDepth: 減衰深さ, m

    Returns:
        節点の温度, degree C, [i]

    Notes:
        地表面温度から深部の温度に向かって指数関数的に減衰するものとする。
*/
func NodeTemperatures(depths []float64, surfTemp, deepTemp, dampDepth float64) *mat.VecDense {
	t := make([]float64, len(depths))
	for i, z := range depths {
		t[i] = ExpInterp(z, 0.0, dampDepth, surfTemp, deepTemp)
	}
	return mat.NewVecDense(len(t), t)
}

/*
節点温度から土壌層の平均温度を求める。

    Args:
        depths: 節点の深さ, m, [i]
        temps: 節点の温度, degree C, [i]
        top: 層の上端の深さ, m
        bottom: 層の下端の深さ, m

    Returns:
        層の平均温度, degree C

    Notes:
        節点間の温度は線形補間し、台形則で積分した値を層厚で除す。
        節点は2つ以上で深さの昇順とし、bottom > top とする。検証はしない。
*/
func LayerTemperature(depths []float64, temps mat.Vector, top, bottom float64) float64 {
	z := []float64{top}
	t := []float64{_temp_at(depths, temps, top)}
	for i, d := range depths {
		if d > top && d < bottom {
			z = append(z, d)
			t = append(t, temps.AtVec(i))
		}
	}
	z = append(z, bottom)
	t = append(t, _temp_at(depths, temps, bottom))

	return integrate.Trapezoidal(z, t) / (bottom - top)
}

// 深さ z の温度 (範囲外は両端の節点から外挿)
func _temp_at(depths []float64, temps mat.Vector, z float64) float64 {
	n := len(depths)
	i := sort.SearchFloat64s(depths, z)
	if i < 1 {
		i = 1
	} else if i > n-1 {
		i = n - 1
	}
	return LinearInterp(z, depths[i-1], depths[i], temps.AtVec(i-1), temps.AtVec(i))
}
