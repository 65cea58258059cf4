package mahjong

import (
	"fmt"
	"strings"
)

// Payment 一次和牌的支付
type Payment struct {
	Total         int64
	FromDealer    int64 // 子家自摸时庄家付
	FromNonDealer int64 // 自摸时每个子家付
	FromDiscarder int64 // 荣和时放铳者付
}

// ScoringResult 完整算分结果
type ScoringResult struct {
	Structure        Structure
	Yaku             YakuResult
	Fu               FuResult
	Han              int
	Level            EScoreLevel
	BasicPoints      int64
	Payment          Payment
	IsDealer         bool
	IsCountedYakuman bool
}

// DetermineScoreLevel 按番符定档。
// 役满的番数每个役满13,双倍26,多役满相加。
// 13番以上靠普通役加宝牌凑出的算累计役满,单独标记。
func DetermineScoreLevel(han, fu int, isYakuman bool, rules Rules) EScoreLevel {
	if isYakuman {
		switch {
		case han >= 39:
			return ScoreLevelTripleYakuman
		case han >= 26:
			return ScoreLevelDoubleYakuman
		default:
			return ScoreLevelYakuman
		}
	}
	switch {
	case han >= 13:
		return ScoreLevelYakuman // 累计役满
	case han >= 11:
		return ScoreLevelSanbaiman
	case han >= 8:
		return ScoreLevelBaiman
	case han >= 6:
		return ScoreLevelHaneman
	case han >= 5:
		return ScoreLevelMangan
	case han == 4 && fu >= 40:
		return ScoreLevelMangan
	case han == 3 && fu >= 70:
		return ScoreLevelMangan
	case rules.KiriageMangan && (han == 4 && fu == 30 || han == 3 && fu == 60):
		return ScoreLevelMangan
	default:
		return ScoreLevelNone
	}
}

// BasicPoints 基本点 = 符 x 2^(番+2),上限2000,满贯以上取固定档
func BasicPoints(han, fu int, isYakuman bool, rules Rules) int64 {
	level := DetermineScoreLevel(han, fu, isYakuman, rules)
	if level != ScoreLevelNone {
		return level.BasicPoints()
	}
	basic := int64(fu) << uint(han+2)
	if basic > 2000 {
		basic = 2000
	}
	return basic
}

// CalcPayment 基本点换算支付,单笔向上取整到百
func CalcPayment(basic int64, isDealer bool, winType EWinType) Payment {
	if winType == WinTypeTsumo {
		if isDealer {
			each := roundUpTo100(basic * 2)
			return Payment{Total: each * 3, FromNonDealer: each}
		}
		fromDealer := roundUpTo100(basic * 2)
		fromEach := roundUpTo100(basic)
		return Payment{Total: fromDealer + fromEach*2, FromDealer: fromDealer, FromNonDealer: fromEach}
	}
	mult := int64(4)
	if isDealer {
		mult = 6
	}
	from := roundUpTo100(basic * mult)
	return Payment{Total: from, FromDiscarder: from}
}

func roundUpTo100(v int64) int64 {
	return (v + 99) / 100 * 100
}

// CalcScore 把一种拆解的役种结果换算成最终得点
func CalcScore(st Structure, yaku YakuResult, ctx *GameContext, rules Rules) ScoringResult {
	fu := CalcFu(st, ctx, rules)
	han := yaku.TotalHan()
	level := DetermineScoreLevel(han, fu.Total, yaku.IsYakuman, rules)
	basic := BasicPoints(han, fu.Total, yaku.IsYakuman, rules)
	isDealer := ctx.IsDealer()

	counted := !yaku.IsYakuman &&
		(level == ScoreLevelYakuman || level == ScoreLevelDoubleYakuman)

	return ScoringResult{
		Structure:        st,
		Yaku:             yaku,
		Fu:               fu,
		Han:              han,
		Level:            level,
		BasicPoints:      basic,
		Payment:          CalcPayment(basic, isDealer, ctx.WinType),
		IsDealer:         isDealer,
		IsCountedYakuman: counted,
	}
}

// Format 人读的算分摘要
func (r *ScoringResult) Format() string {
	var b strings.Builder
	b.WriteString("yaku:\n")
	for _, y := range r.Yaku.Yaku {
		fmt.Fprintf(&b, "  %s (%d han)\n", y.Name(), y.Han(false))
	}
	if r.Yaku.Dora > 0 {
		fmt.Fprintf(&b, "  dora (%d han)\n", r.Yaku.Dora)
	}
	if r.Yaku.Ura > 0 {
		fmt.Fprintf(&b, "  ura dora (%d han)\n", r.Yaku.Ura)
	}
	if r.Yaku.Aka > 0 {
		fmt.Fprintf(&b, "  aka (%d han)\n", r.Yaku.Aka)
	}

	fmt.Fprintf(&b, "\n%d han / %d fu\n", r.Han, r.Fu.Total)
	if r.Level != ScoreLevelNone {
		level := r.Level.String()
		if r.IsCountedYakuman {
			level = "counted " + level
		}
		b.WriteString(level + "\n")
	}

	fmt.Fprintf(&b, "\ntotal: %d points\n", r.Payment.Total)
	switch {
	case r.Payment.FromDiscarder > 0:
		fmt.Fprintf(&b, "ron: %d from discarder\n", r.Payment.FromDiscarder)
	case r.IsDealer:
		fmt.Fprintf(&b, "tsumo: %d all\n", r.Payment.FromNonDealer)
	default:
		fmt.Fprintf(&b, "tsumo: %d/%d\n", r.Payment.FromDealer, r.Payment.FromNonDealer)
	}
	return b.String()
}
