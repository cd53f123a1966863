package soil

// モデルの設定
//
// 呼び出し側が所有し、値渡しする。本パッケージでは変更しない。
type Options struct {
	// 凍土の計算を行うか否か (FROZEN_SOIL)
	FrozenSoil bool
}
