package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

// ParsedHand 解析结果:手牌、赤五数、副露
type ParsedHand struct {
	Tiles    []Tile
	AkaCount int
	Called   []CalledMeld
}

// AllTiles 手牌加副露的全部牌
func (p *ParsedHand) AllTiles() []Tile {
	all := append([]Tile{}, p.Tiles...)
	for _, c := range p.Called {
		all = append(all, c.Tiles...)
	}
	return all
}

// Validate 牌数须为14+杠数,单种牌不超过4张
func (p *ParsedHand) Validate() error {
	kans := 0
	for _, c := range p.Called {
		if err := c.validate(); err != nil {
			return err
		}
		if c.Meld.Type == GroupTypeKon {
			kans++
		}
	}
	all := p.AllTiles()
	if want := TileCountInitBanker + kans; len(all) != want {
		return fmt.Errorf("%w: %d kan(s) need %d tiles, got %d", ErrInvalidTileCount, kans, want, len(all))
	}
	counts := NewCounts(all)
	for i, n := range counts {
		if n > MaxSameTile {
			return fmt.Errorf("%w: %s x%d", ErrTooManySame, TileFromIndex(i), n)
		}
	}
	return nil
}

type pendingTile struct {
	point int
	red   bool
}

// ParseHand 解析牌谱记法:
// 数牌 123m456p789s,字牌 1234z 或字母 e/s/w/n/wh/g/r,赤五用0,
// 暗杠 [1111m],明杠/碰/吃 (1111m)/(111m)/(123m)
func ParseHand(input string) (*ParsedHand, error) {
	p := &ParsedHand{}
	var pending []pendingTile

	runes := []rune(input)
	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '[' || ch == '(':
			closed := ch == '['
			closeCh := ']'
			if !closed {
				closeCh = ')'
			}
			end := i + 1
			for end < len(runes) && runes[end] != closeCh {
				end++
			}
			if end >= len(runes) {
				return nil, fmt.Errorf("%w: unclosed bracket at %d", ErrNotation, i)
			}
			called, aka, err := parseMeld(string(runes[i+1:end]), closed)
			if err != nil {
				return nil, err
			}
			p.Called = append(p.Called, called)
			p.AkaCount += aka
			i = end + 1
			continue

		case ch == ']' || ch == ')':
			return nil, fmt.Errorf("%w: unexpected '%c' at %d", ErrNotation, ch, i)

		case ch >= '1' && ch <= '9':
			pending = append(pending, pendingTile{point: int(ch - '1')})

		case ch == '0': // 赤五
			pending = append(pending, pendingTile{point: 4, red: true})

		case (ch == 'm' || ch == 'p' || ch == 's') && len(pending) > 0:
			color := map[rune]EColor{'m': ColorCharacter, 'p': ColorDot, 's': ColorBamboo}[ch]
			for _, pt := range pending {
				p.Tiles = append(p.Tiles, makeSuited(color, pt))
				if pt.red {
					p.AkaCount++
				}
			}
			pending = nil

		case ch == 'z':
			for _, pt := range pending {
				if pt.red {
					return nil, fmt.Errorf("%w: red five on honor", ErrNotation)
				}
				if pt.point > 6 {
					return nil, fmt.Errorf("%w: honor number %d", ErrNotation, pt.point+1)
				}
				p.Tiles = append(p.Tiles, TileFromIndex(IndexBeginByColor[ColorWind]+pt.point))
			}
			pending = nil

		case ch == ' ' || ch == '\t' || ch == '\n':

		default:
			if len(pending) > 0 {
				return nil, fmt.Errorf("%w: pending digits need a suit before '%c'", ErrNotation, ch)
			}
			honor, consumed := parseHonorLetter(runes, i)
			if consumed == 0 {
				return nil, fmt.Errorf("%w: unexpected '%c'", ErrNotation, ch)
			}
			p.Tiles = append(p.Tiles, honor)
			i += consumed
			continue
		}
		i++
	}

	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: trailing digits without suit", ErrNotation)
	}
	return p, nil
}

func makeSuited(color EColor, pt pendingTile) Tile {
	if pt.red {
		return MakeRedTile(color)
	}
	return MakeTile(color, pt.point)
}

// 字母记法:e东 s南 w西 n北 wh白 g发 r中
func parseHonorLetter(runes []rune, i int) (Tile, int) {
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		return r
	}
	ch := lower(runes[i])
	if ch == 'w' && i+1 < len(runes) && lower(runes[i+1]) == 'h' {
		return TileBai, 2
	}
	switch ch {
	case 'e':
		return TileDong, 1
	case 's':
		return TileNan, 1
	case 'w':
		return TileXi, 1
	case 'n':
		return TileBei, 1
	case 'g':
		return TileFa, 1
	case 'r':
		return TileZhong, 1
	}
	return TileNull, 0
}

// 解析括号内的副露
func parseMeld(content string, closed bool) (CalledMeld, int, error) {
	var none CalledMeld
	if content == "" {
		return none, 0, fmt.Errorf("%w: empty meld", ErrNotation)
	}

	tiles, aka, err := parseMeldTiles(content)
	if err != nil {
		return none, 0, err
	}

	switch len(tiles) {
	case 4:
		first := tiles[0].Kind()
		for _, t := range tiles {
			if t.Kind() != first {
				return none, 0, fmt.Errorf("%w: kan needs 4 identical tiles", ErrInvalidMeld)
			}
		}
		kon := KonTypeZhi
		if closed {
			kon = KonTypeAn
		}
		return CalledMeld{Meld: NewKon(first, kon), Tiles: tiles}, aka, nil
	case 3:
		first := tiles[0].Kind()
		same := true
		for _, t := range tiles {
			if t.Kind() != first {
				same = false
			}
		}
		if same {
			m := NewPonOpen(first)
			if closed {
				m = NewPon(first)
			}
			return CalledMeld{Meld: m, Tiles: tiles}, aka, nil
		}
		if !tiles[0].IsSuit() {
			return none, 0, fmt.Errorf("%w: honor sequence", ErrInvalidMeld)
		}
		kinds := []Tile{tiles[0].Kind(), tiles[1].Kind(), tiles[2].Kind()}
		sort.Slice(kinds, func(a, b int) bool { return kinds[a] < kinds[b] })
		if kinds[0].Color() != kinds[2].Color() ||
			kinds[1].Point() != kinds[0].Point()+1 || kinds[2].Point() != kinds[0].Point()+2 {
			return none, 0, fmt.Errorf("%w: sequence must be consecutive", ErrInvalidMeld)
		}
		m := NewChowOpen(kinds[0])
		if closed {
			m = NewChow(kinds[0])
		}
		return CalledMeld{Meld: m, Tiles: tiles}, aka, nil
	default:
		return none, 0, fmt.Errorf("%w: meld needs 3 or 4 tiles, got %d", ErrInvalidMeld, len(tiles))
	}
}

func parseMeldTiles(content string) ([]Tile, int, error) {
	runes := []rune(content)

	// 纯字母记法,如 eee / wwww
	var honorTiles []Tile
	i := 0
	for i < len(runes) {
		t, consumed := parseHonorLetter(runes, i)
		if consumed == 0 {
			break
		}
		honorTiles = append(honorTiles, t)
		i += consumed
	}
	if i == len(runes) && len(honorTiles) > 0 {
		return honorTiles, 0, nil
	}

	// 数字记法,末尾是花色
	suitCh := runes[len(runes)-1]
	var color EColor
	switch suitCh {
	case 'm':
		color = ColorCharacter
	case 'p':
		color = ColorDot
	case 's':
		color = ColorBamboo
	case 'z':
		color = ColorUndefined
	default:
		return nil, 0, fmt.Errorf("%w: bad meld suit '%c'", ErrInvalidMeld, suitCh)
	}

	var tiles []Tile
	aka := 0
	for _, ch := range runes[:len(runes)-1] {
		switch {
		case ch >= '1' && ch <= '9':
			pt := int(ch - '1')
			if color == ColorUndefined {
				if pt > 6 {
					return nil, 0, fmt.Errorf("%w: honor number %d", ErrInvalidMeld, pt+1)
				}
				tiles = append(tiles, TileFromIndex(IndexBeginByColor[ColorWind]+pt))
			} else {
				tiles = append(tiles, MakeTile(color, pt))
			}
		case ch == '0':
			if color == ColorUndefined {
				return nil, 0, fmt.Errorf("%w: red five on honor", ErrInvalidMeld)
			}
			tiles = append(tiles, MakeRedTile(color))
			aka++
		default:
			return nil, 0, fmt.Errorf("%w: bad meld char '%c'", ErrInvalidMeld, ch)
		}
	}
	return tiles, aka, nil
}

// ParseTile 单张牌
func ParseTile(s string) (Tile, error) {
	p, err := ParseHand(strings.TrimSpace(s))
	if err != nil {
		return TileNull, err
	}
	if len(p.Tiles) != 1 || len(p.Called) != 0 {
		return TileNull, fmt.Errorf("%w: want a single tile, got %q", ErrNotation, s)
	}
	return p.Tiles[0], nil
}
