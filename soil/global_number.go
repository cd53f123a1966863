package soil

// Ksat の測定基準温度, degree C
const tKsatRef = 20.0

// Ksat 補正係数の上限
const ksatFactorMax = 2.0

// 動粘性係数の回帰式の係数 (Handbook of Chemistry and Physics)
const (
	ksatA0 = 0.003557
	ksatB0 = 0.006534
	ksatB1 = -0.0002282
	ksatB2 = 4.794e-6
	ksatB3 = -4.143e-8
)
