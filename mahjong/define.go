package mahjong

import "errors"

// 牌色
type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 m
	ColorDot                         // 筒 p
	ColorBamboo                      // 条 s
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var IndexBeginByColor = [ColorEnd]int{0, 9, 18, 27, 31}

const (
	TileKindCount = 34
	MaxSameTile   = 4

	TileCountInitBanker = 14
	TileCountInitNormal = 13
)

type EWinType int

const (
	WinTypeRon EWinType = iota
	WinTypeTsumo
)

type KonType int

const (
	KonTypeNone KonType = iota
	KonTypeAn           // 暗杠
	KonTypeZhi          // 直杠
	KonTypeBu           // 补杠
)

func (k KonType) IsOpen() bool {
	return k == KonTypeZhi || k == KonTypeBu
}

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow                   // 顺子
	GroupTypePon                    // 刻子
	GroupTypeKon                    // 杠
)

// 手牌风格类型
type EHandStyle int

const (
	HandNormal          EHandStyle = iota // 四面子一对
	HandSevenPairs                        // 七对
	HandThirteenOrphans                   // 国士无双
)

type EWaitType int

const (
	WaitRyanmen EWaitType = iota // 两面
	WaitShanpon                  // 双碰
	WaitKanchan                  // 嵌张
	WaitPenchan                  // 边张
	WaitTanki                    // 单骑
	WaitKokushi13                // 国士十三面
)

// 听牌方式的符数
func (w EWaitType) Fu() int {
	switch w {
	case WaitKanchan, WaitPenchan, WaitTanki:
		return 2
	default:
		return 0
	}
}

func (w EWaitType) String() string {
	switch w {
	case WaitRyanmen:
		return "ryanmen"
	case WaitShanpon:
		return "shanpon"
	case WaitKanchan:
		return "kanchan"
	case WaitPenchan:
		return "penchan"
	case WaitTanki:
		return "tanki"
	case WaitKokushi13:
		return "kokushi-13"
	default:
		return "unknown"
	}
}

type EScoreLevel int

const (
	ScoreLevelNone EScoreLevel = iota
	ScoreLevelMangan
	ScoreLevelHaneman
	ScoreLevelBaiman
	ScoreLevelSanbaiman
	ScoreLevelYakuman
	ScoreLevelDoubleYakuman
	ScoreLevelTripleYakuman
)

func (s EScoreLevel) String() string {
	switch s {
	case ScoreLevelMangan:
		return "mangan"
	case ScoreLevelHaneman:
		return "haneman"
	case ScoreLevelBaiman:
		return "baiman"
	case ScoreLevelSanbaiman:
		return "sanbaiman"
	case ScoreLevelYakuman:
		return "yakuman"
	case ScoreLevelDoubleYakuman:
		return "double yakuman"
	case ScoreLevelTripleYakuman:
		return "triple yakuman"
	default:
		return ""
	}
}

// BasicPoints 满贯及以上的固定基本点
func (s EScoreLevel) BasicPoints() int64 {
	switch s {
	case ScoreLevelMangan:
		return 2000
	case ScoreLevelHaneman:
		return 3000
	case ScoreLevelBaiman:
		return 4000
	case ScoreLevelSanbaiman:
		return 6000
	case ScoreLevelYakuman:
		return 8000
	case ScoreLevelDoubleYakuman:
		return 16000
	case ScoreLevelTripleYakuman:
		return 24000
	default:
		return 0
	}
}

// 算分方式
type ScoreType int

const (
	ScoreTypeNatural  ScoreType = iota // 自然分
	ScoreTypePositive                  // 超出玩家带入的输分由系统支出
	ScoreTypeJustWin                   // 只赢不输
)

// 错误分类:输入形状错误、无解、局况自相矛盾
var (
	ErrInvalidTileCount = errors.New("mahjong: tile count inconsistent with declared kans")
	ErrInvalidMeld      = errors.New("mahjong: malformed called meld")
	ErrTooManySame      = errors.New("mahjong: a tile kind appears more than four times")
	ErrNoValidStructure = errors.New("mahjong: no valid winning structure")
	ErrNoWinningTile    = errors.New("mahjong: no candidate winning tile yields a scoring hand")
	ErrNoYaku           = errors.New("mahjong: hand has no yaku")
	ErrContextConflict  = errors.New("mahjong: inconsistent game context")
	ErrNotation         = errors.New("mahjong: bad hand notation")
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}
