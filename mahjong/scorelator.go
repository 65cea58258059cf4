package mahjong

import (
	"errors"
	"slices"
)

const SeatCount = 4

// 分数计算器,把和牌结果摊到四家
type Scorelator struct {
	scoreType ScoreType
	honba     int64 // 本场数
	kyoutaku  int64 // 供托立直棒数
}

func NewScorelator(scoreType ScoreType) *Scorelator {
	return &Scorelator{scoreType: scoreType}
}

func (s *Scorelator) SetHonba(n int) {
	s.honba = int64(n)
}

func (s *Scorelator) SetKyoutaku(n int) {
	s.kyoutaku = int64(n)
}

// Settle 生成四家分数变动,和为零(供托除外)。
// takeScores是各家带入分,ScoreTypePositive下输分不超过带入。
func (s *Scorelator) Settle(result *ScoringResult, ctx *GameContext, winner, discarder int, takeScores []int64) ([]int64, error) {
	if winner < 0 || winner >= SeatCount {
		return nil, errors.New("invalid winner seat")
	}
	if len(takeScores) != SeatCount {
		return nil, errors.New("takeScores must have four entries")
	}

	winScores := make([]int64, SeatCount)
	pay := result.Payment

	if ctx.IsTsumo() {
		for seat := 0; seat < SeatCount; seat++ {
			if seat == winner {
				continue
			}
			cost := pay.FromNonDealer
			if !result.IsDealer && s.isDealerSeat(ctx, winner, seat) {
				cost = pay.FromDealer
			}
			winScores[seat] -= cost + s.honba*100
		}
	} else {
		if discarder < 0 || discarder >= SeatCount || discarder == winner {
			return nil, errors.New("invalid discarder seat")
		}
		winScores[discarder] -= pay.FromDiscarder + s.honba*300
	}

	var gain int64
	for seat := 0; seat < SeatCount; seat++ {
		gain -= winScores[seat]
	}
	winScores[winner] = gain

	res := s.apply(takeScores, winScores)
	res[winner] += s.kyoutaku * 1000
	return res, nil
}

// 闲家自摸时庄家那份按庄家位判断
func (s *Scorelator) isDealerSeat(ctx *GameContext, winner, seat int) bool {
	offset := ctx.SeatWind.Point() // 东0 南1 西2 北3
	dealer := GetNextSeat(int32(winner), int32(SeatCount-offset), SeatCount)
	return int32(seat) == dealer
}

func (s *Scorelator) apply(takeScores, winScores []int64) []int64 {
	res := slices.Clone(winScores)
	switch s.scoreType {
	case ScoreTypePositive:
		for i := range res {
			if takeScores[i] < 0 {
				res[i] = 0
			} else if winScores[i]+takeScores[i] < 0 {
				res[i] = -takeScores[i]
			}
		}
	case ScoreTypeJustWin:
		for i := range res {
			if res[i] < 0 {
				res[i] = 0
			}
		}
	}
	return res
}
