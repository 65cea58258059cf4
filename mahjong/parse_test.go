package mahjong_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestParseHand(t *testing.T) {
	type Case struct {
		input   string
		tiles   int
		aka     int
		called  int
		wantErr error
	}
	testCases := []Case{
		{input: "123m456p789s11122z", tiles: 14},
		{input: "067m", tiles: 3, aka: 1},
		{input: "0m0p0s", tiles: 3, aka: 3},
		{input: "eswn whgr", tiles: 7},
		{input: "23m456p789s11z(111m)[9999s]", tiles: 10, called: 2},
		{input: "234567s23678p(222z)", tiles: 11, called: 1},
		{input: "(055p)234m567s99p11z", tiles: 10, aka: 1, called: 1},
		{input: "12", wantErr: mahjong.ErrNotation},
		{input: "0z", wantErr: mahjong.ErrNotation},
		{input: "123m(12m)", wantErr: mahjong.ErrInvalidMeld},
		{input: "123m[123z]", wantErr: mahjong.ErrInvalidMeld},
		{input: "8z", wantErr: mahjong.ErrNotation},
		{input: "123m)", wantErr: mahjong.ErrNotation},
		{input: "(123m", wantErr: mahjong.ErrNotation},
		{input: "123x", wantErr: mahjong.ErrNotation},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			p, err := mahjong.ParseHand(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseHand(%q) err = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHand(%q) failed: %v", tc.input, err)
			}
			if len(p.Tiles) != tc.tiles {
				t.Errorf("tiles = %d, want %d", len(p.Tiles), tc.tiles)
			}
			if p.AkaCount != tc.aka {
				t.Errorf("aka = %d, want %d", p.AkaCount, tc.aka)
			}
			if len(p.Called) != tc.called {
				t.Errorf("called = %d, want %d", len(p.Called), tc.called)
			}
		})
	}
}

func TestParseHandMelds(t *testing.T) {
	p, err := mahjong.ParseHand("23m456p789s11z(111m)[9999s]")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Called) != 2 {
		t.Fatalf("called = %d, want 2", len(p.Called))
	}
	pon := p.Called[0].Meld
	if pon.Type != mahjong.GroupTypePon || !pon.Open {
		t.Errorf("first meld = %+v, want open pon", pon)
	}
	kan := p.Called[1].Meld
	if kan.Type != mahjong.GroupTypeKon || kan.Kon != mahjong.KonTypeAn {
		t.Errorf("second meld = %+v, want concealed kan", kan)
	}
}

func TestParseHandValidate(t *testing.T) {
	type Case struct {
		input   string
		wantErr error
	}
	testCases := []Case{
		{input: "123m456p789s11122z"},
		{input: "23678p234567s(222z)"},
		{input: "123m456p789s1112z", wantErr: mahjong.ErrInvalidTileCount},
		{input: "11112222333m44z55s", wantErr: mahjong.ErrInvalidTileCount},
		{input: "11111m456p789s112z", wantErr: mahjong.ErrTooManySame},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			p, err := mahjong.ParseHand(tc.input)
			if err != nil {
				t.Fatalf("ParseHand(%q) failed: %v", tc.input, err)
			}
			err = p.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate(%q) = %v, want nil", tc.input, err)
				}
			} else if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestParseTile(t *testing.T) {
	got, err := mahjong.ParseTile("5p")
	if err != nil {
		t.Fatal(err)
	}
	if want := mahjong.MakeTile(mahjong.ColorDot, 4); got != want {
		t.Errorf("ParseTile(5p) = %v, want %v", got, want)
	}
	if _, err := mahjong.ParseTile("55p"); err == nil {
		t.Error("ParseTile(55p) should fail")
	}
}

func TestTileName(t *testing.T) {
	type Case struct {
		tile mahjong.Tile
		want string
	}
	testCases := []Case{
		{mahjong.MakeTile(mahjong.ColorCharacter, 0), "1m"},
		{mahjong.MakeTile(mahjong.ColorBamboo, 8), "9s"},
		{mahjong.MakeRedTile(mahjong.ColorDot), "0p"},
		{mahjong.TileDong, "1z"},
		{mahjong.TileZhong, "7z"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			if got := tc.tile.Name(); got != tc.want {
				t.Errorf("Name() = %q, want %q", got, tc.want)
			}
		})
	}
}
