package soil

import "math"

/*
2点 (lx, ly), (ux, uy) を通る直線上の x における値を求める。

    Args:
        x: 補間する位置
        lx: 下側の基準点の位置
        ux: 上側の基準点の位置
        ly: 下側の基準点の値
        uy: 上側の基準点の値

    Returns:
        x における値

    Notes:
        [lx, ux] の外側では外挿する。
        ux == lx のときは Inf または NaN を返す。
*/
func LinearInterp(x, lx, ux, ly, uy float64) float64 {
	return (x-lx)/(ux-lx)*(uy-ly) + ly
}

/*
深さ方向に指数関数的に減衰する値を求める。

    Args:
        x: 深さ
        lx: 基準深さ
        ux: 減衰深さ (damping depth)
        ly: 基準深さにおける値 (地表面温度など)
        uy: 深部の漸近値

    Returns:
        深さ x における値

    Notes:
        減衰深さでは、漸近値との差が地表面での差の 1/e になる。
        ux == 0 のときは Inf または NaN を返す。
*/
func ExpInterp(x, lx, ux, ly, uy float64) float64 {
	return uy + (ly-uy)*math.Exp(-(x-lx)/ux)
}
