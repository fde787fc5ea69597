package condottieri

import (
	"image"
	"image/color"
	"testing"
)

// testSetting returns a small, indexed setting:
//
//	ALI (fortified port) -- MUR (coast) : fleet passable
//	ALI -- ALB (city)                   : land only
//	MUR -- ALB                          : land only
//	ALI -- GOL (sea)
//	LAG (mixed) -- GOL
func testSetting(t *testing.T) *Setting {
	t.Helper()
	s := &Setting{
		Slug:  "dummy-setting",
		Title: "dummy setting",
		Areas: []*Area{
			{
				Code: "ALI", Name: "Alicante",
				IsCoast: true, HasCity: true, IsFortified: true, HasPort: true,
				ControlIncome: 2, GarrisonIncome: 1,
				ControlToken: &Token{X: 10, Y: 10},
				GToken:       &Token{X: 20, Y: 20},
				AFToken:      &Token{X: 30, Y: 30},
			},
			{
				Code: "MUR", Name: "Murcia", IsCoast: true,
				ControlToken: &Token{X: 60, Y: 10},
				AFToken:      &Token{X: 70, Y: 30},
			},
			{
				Code: "ALB", Name: "Albacete", HasCity: true,
				ControlToken: &Token{X: 10, Y: 60},
				AFToken:      &Token{X: 30, Y: 70},
			},
			{
				Code: "GOL", Name: "Golfo", IsSea: true,
				AFToken: &Token{X: 60, Y: 60},
				Storm:   &Cell{Row: 1, Column: 1},
			},
			{
				Code: "LAG", Name: "Laguna", Mixed: true, HasCity: true, IsFortified: true, HasPort: true,
				ControlIncome: 3, GarrisonIncome: 2,
				ControlToken: &Token{X: 80, Y: 80},
				GToken:       &Token{X: 85, Y: 85},
				AFToken:      &Token{X: 90, Y: 90},
			},
		},
		Borders: []*Border{
			{From: "ALI", To: "MUR"},
			{From: "ALI", To: "ALB", OnlyLand: true},
			{From: "MUR", To: "ALB", OnlyLand: true},
			{From: "ALI", To: "GOL"},
			{From: "LAG", To: "GOL"},
		},
	}
	if err := s.Index(); err != nil {
		t.Fatalf("Index: %v", err)
	}
	return s
}

// testScenario returns a valid scenario over testSetting
func testScenario() *Scenario {
	return &Scenario{
		Slug:            "dummy-scenario",
		Title:           "dummy scenario",
		Setting:         "dummy-setting",
		NumberOfPlayers: 2,
		Neutrals:        []string{"murcia"},
		CityIncomes:     []string{"ALI"},
		Contenders: []*Contender{
			{
				Country:  "murcia",
				Priority: 2,
				Homes:    []*Home{{Area: "MUR", IsHome: true}},
				Setups:   []*Setup{{Area: "MUR", UnitType: Fleet}},
				Treasury: &Treasury{Ducats: 3},
			},
			{
				Country:  "alicante",
				Priority: 1,
				Homes:    []*Home{{Area: "ALI", IsHome: true}, {Area: "ALB"}},
				Setups: []*Setup{
					{Area: "ALI", UnitType: Garrison},
					{Area: "ALB", UnitType: Army},
					{Area: "GOL", UnitType: Fleet},
				},
				Treasury: &Treasury{Ducats: 12},
			},
			{
				Setups: []*Setup{{Area: "LAG", UnitType: Garrison}},
			},
		},
	}
}

// solid returns a w x h image filled with c
func solid(w, h int, c color.Color) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, c)
		}
	}
	return im
}
