package soil

/*
温度による水の粘性・密度の変化を考慮して Ksat に乗じる係数を求める。

    Args:
        opts: モデルの設定
        temp: 温度, degree C

    Returns:
        Ksat に乗じる係数, -

    Notes:
        Ksat は 20℃ で測定された値とする。
        現在は KsatFactor の計算結果を使わず、常に 1.0 を返す。
*/
func ModifyKsat(opts Options, temp float64) float64 {
	factor := KsatFactor(opts, temp)
	_ = factor

	return 1.0
}

/*
Ksat の温度補正係数を計算する。

    Args:
        opts: モデルの設定
        temp: 温度, degree C

    Returns:
        Ksat の温度補正係数, -

    Notes:
        凍土の計算を行う場合は動粘性係数の回帰式から求め、2.0 を上限とする。
        凍土の計算を行わない場合は 1.0 とする。
        回帰式の分母が 0 に近い温度では Inf または NaN になり得るが、検証はしない。
        粘性・密度は Linsley "Hydrology for Engineers" A-10 による。(ViscosityTable を参照)
*/
func KsatFactor(opts Options, temp float64) float64 {
	var factor float64
	if opts.FrozenSoil {
		factor = ksatA0 / _ksat_denominator(temp)
	} else {
		factor = 1.0
	}

	if factor > ksatFactorMax {
		factor = ksatFactorMax
	}

	return factor
}

// 回帰式の分母 (温度の3次式)
func _ksat_denominator(temp float64) float64 {
	return ksatB0 + temp*(ksatB1+temp*(ksatB2+temp*ksatB3))
}
