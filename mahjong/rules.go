package mahjong

// Rules 可配置的规则开关
type Rules struct {
	// 连风对子的符数:true记4符,false记2符
	DoubleWindFu4 bool `json:"double_wind_fu4"`
	// 切上满贯:4番30符/3番60符按满贯计
	KiriageMangan bool `json:"kiriage_mangan"`
}

func DefaultRules() Rules {
	return Rules{
		DoubleWindFu4: true,
		KiriageMangan: false,
	}
}
