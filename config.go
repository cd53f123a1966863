package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// 計算モード
type Mode string

const (
	ModeKsat    Mode = "ksat"
	ModeTable   Mode = "table"
	ModeLinear  Mode = "linear"
	ModeExp     Mode = "exp"
	ModeProfile Mode = "profile"
)

type Config struct {
	Mode       Mode
	FrozenSoil bool
	Temp       float64

	// 補間の引数
	X, Lx, Ux, Ly, Uy float64

	// 地中温度の引数
	Depths    []float64
	SurfTemp  float64
	DeepTemp  float64
	DampDepth float64

	LogLevel zerolog.Level
}

/*
.env ファイルがあれば環境変数に読み込む。

    Args:
        filenames: .env ファイルのパス (省略時はカレントディレクトリの .env)
*/
func load_env(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

/*
コマンドライン引数から設定を読み込む。

    Args:
        args: コマンドライン引数 (プログラム名を除く)

    Returns:
        設定

    Notes:
        VIC_FROZEN_SOIL, VIC_LOG_LEVEL 環境変数を既定値とし、引数で上書きする。
*/
func parse_config(args []string) (*Config, error) {
	frozenDefault := false
	if v := os.Getenv("VIC_FROZEN_SOIL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("VIC_FROZEN_SOIL: %w", err)
		}
		frozenDefault = b
	}

	logDefault := os.Getenv("VIC_LOG_LEVEL")
	if logDefault == "" {
		logDefault = "error"
	}

	cfg := &Config{}
	fset := flag.NewFlagSet("vic_soil", flag.ContinueOnError)

	var mode string
	fset.StringVar(&mode, "mode", string(ModeKsat), "計算モード (ksat, table, linear, exp, profile)")
	fset.BoolVar(&cfg.FrozenSoil, "frozen_soil", frozenDefault, "凍土の計算を行うか否か (FROZEN_SOIL)")
	fset.Float64Var(&cfg.Temp, "temp", 20.0, "温度, degree C")

	fset.Float64Var(&cfg.X, "x", 0.0, "補間する位置")
	fset.Float64Var(&cfg.Lx, "lx", 0.0, "下側の基準点の位置")
	fset.Float64Var(&cfg.Ux, "ux", 1.0, "上側の基準点の位置 (exp では減衰深さ)")
	fset.Float64Var(&cfg.Ly, "ly", 0.0, "下側の基準点の値")
	fset.Float64Var(&cfg.Uy, "uy", 1.0, "上側の基準点の値 (exp では漸近値)")

	var depths string
	fset.StringVar(&depths, "depths", "0,0.1,0.3,1.0,3.0", "節点の深さ, m (カンマ区切り)")
	fset.Float64Var(&cfg.SurfTemp, "surf_temp", 20.0, "地表面温度, degree C")
	fset.Float64Var(&cfg.DeepTemp, "deep_temp", 10.0, "深部の温度, degree C")
	fset.Float64Var(&cfg.DampDepth, "damp_depth", 4.0, "減衰深さ, m")

	var logLevel string
	fset.StringVar(&logLevel, "log", logDefault, "ログレベル (trace, debug, info, warn, error)")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	switch m := Mode(mode); m {
	case ModeKsat, ModeTable, ModeLinear, ModeExp, ModeProfile:
		cfg.Mode = m
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl

	cfg.Depths, err = parse_depths(depths)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parse_depths(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	depths := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		d, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("depths: %w", err)
		}
		depths = append(depths, d)
	}
	return depths, nil
}
