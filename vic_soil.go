package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vic_soil/soil"
)

// 地中温度の出力行
type ProfileRow struct {
	Depth float64 `csv:"depth"`
	Temp  float64 `csv:"temp"`
}

/*
計算の実行

    Args:
        cfg: 設定
        w: 計算結果の出力先
*/
func run(cfg *Config, w io.Writer) error {
	opts := soil.Options{FrozenSoil: cfg.FrozenSoil}

	switch cfg.Mode {
	case ModeKsat:
		factor := soil.KsatFactor(opts, cfg.Temp)
		log.Debug().
			Float64("temp", cfg.Temp).
			Bool("frozen_soil", opts.FrozenSoil).
			Float64("ksat_factor", factor).
			Msg("Ksat の温度補正係数")
		_, err := fmt.Fprintf(w, "%g\n", soil.ModifyKsat(opts, cfg.Temp))
		return err

	case ModeTable:
		s := soil.CompareReference(opts)
		log.Info().
			Float64("mean_residual", s.MeanResidual).
			Float64("mean_abs_residual", s.MeanAbsResidual).
			Float64("rmse", s.RMSE).
			Float64("max_abs_residual", s.MaxAbsResidual).
			Msg("回帰式と Linsley A-10 の比較")
		if err := gocsv.Marshal(&s.Rows, w); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return nil

	case ModeLinear:
		_, err := fmt.Fprintf(w, "%g\n", soil.LinearInterp(cfg.X, cfg.Lx, cfg.Ux, cfg.Ly, cfg.Uy))
		return err

	case ModeExp:
		_, err := fmt.Fprintf(w, "%g\n", soil.ExpInterp(cfg.X, cfg.Lx, cfg.Ux, cfg.Ly, cfg.Uy))
		return err

	case ModeProfile:
		if len(cfg.Depths) < 2 {
			return errors.New("profile needs at least 2 depths")
		}
		if !sort.Float64sAreSorted(cfg.Depths) {
			return errors.New("depths must be in ascending order")
		}

		tn := soil.NodeTemperatures(cfg.Depths, cfg.SurfTemp, cfg.DeepTemp, cfg.DampDepth)
		rows := make([]ProfileRow, tn.Len())
		for i := range rows {
			rows[i] = ProfileRow{Depth: cfg.Depths[i], Temp: tn.AtVec(i)}
		}

		top, bottom := cfg.Depths[0], cfg.Depths[len(cfg.Depths)-1]
		if bottom > top {
			log.Info().
				Float64("top", top).
				Float64("bottom", bottom).
				Float64("mean_temp", soil.LayerTemperature(cfg.Depths, tn, top, bottom)).
				Msg("地中温度の平均")
		}

		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := load_env(); err != nil {
		log.Fatal().Err(err).Msg("環境変数の読み込みに失敗")
	}

	cfg, err := parse_config(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("引数の読み込みに失敗")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	log.Debug().
		Str("mode", string(cfg.Mode)).
		Bool("frozen_soil", cfg.FrozenSoil).
		Msg("設定")

	start := time.Now()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("計算に失敗")
	}

	log.Debug().Dur("elapsed_time", time.Since(start)).Msg("完了")
}
