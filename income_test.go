package condottieri

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseIncomeTable(t *testing.T) {
	tests := []struct {
		in      string
		want    IncomeTable
		wantErr bool
	}{
		{in: "1,2,3,4,5,6", want: IncomeTable{1, 2, 3, 4, 5, 6}},
		{in: "0, 0, 1, 1, 2, 10", want: IncomeTable{0, 0, 1, 1, 2, 10}},
		{in: "1,2,3,4,5", wantErr: true},
		{in: "1,2,3,4,5,6,7", wantErr: true},
		{in: "1,2,3,4,5,-6", wantErr: true},
		{in: "a,b,c,d,e,f", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseIncomeTable(tt.in)
		if tt.wantErr {
			if errors.Cause(err) != ErrMalformedIncomeTable {
				t.Fatalf("ParseIncomeTable(%q) = %v, want ErrMalformedIncomeTable", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseIncomeTable(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseIncomeTable(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIncomeTableDucats(t *testing.T) {
	table, err := ParseIncomeTable("1,2,3,4,5,6")
	if err != nil {
		t.Fatalf("ParseIncomeTable: %v", err)
	}

	tests := []struct {
		die    int
		double bool
		want   int
	}{
		{1, false, 1},
		{1, true, 2},
		{6, false, 6},
		{4, true, 8},
	}
	for _, tt := range tests {
		got, err := table.Ducats(tt.die, tt.double)
		if err != nil {
			t.Fatalf("Ducats(%d, %v): %v", tt.die, tt.double, err)
		}
		if got != tt.want {
			t.Fatalf("Ducats(%d, %v) = %d, want %d", tt.die, tt.double, got, tt.want)
		}
	}

	for _, die := range []int{0, 7} {
		if _, err := table.Ducats(die, false); err == nil {
			t.Fatalf("Ducats(%d): expected error", die)
		}
	}

	if got := table.String(); got != "1,2,3,4,5,6" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCountryRandomIncome(t *testing.T) {
	s := testSetting(t)
	c := &Country{
		Name:          "Albacete",
		StaticName:    "albacete",
		Color:         "000000",
		RandomIncomes: []*CountryRandomIncome{{Setting: s.Slug, IncomeList: "1,2,3,4,5,6"}},
	}

	if !c.HasIncome(s) {
		t.Fatalf("HasIncome() = false")
	}
	got, err := c.RandomIncome(s, 1, true)
	if err != nil {
		t.Fatalf("RandomIncome: %v", err)
	}
	if got != 2 {
		t.Fatalf("RandomIncome(1, double) = %d, want 2", got)
	}

	other := &Setting{Slug: "other"}
	if c.HasIncome(other) {
		t.Fatalf("HasIncome(other) = true")
	}
	// no table: no income & no complaint about the die
	got, err = c.RandomIncome(other, 0, false)
	if err != nil || got != 0 {
		t.Fatalf("RandomIncome(other) = %d, %v; want 0, nil", got, err)
	}

	c.RandomIncomes[0].IncomeList = "1,2"
	if _, err := c.RandomIncome(s, 1, false); errors.Cause(err) != ErrMalformedIncomeTable {
		t.Fatalf("RandomIncome(malformed) = %v, want ErrMalformedIncomeTable", err)
	}
}

func TestCityRandomIncome(t *testing.T) {
	s := testSetting(t)
	s.CityRandomIncomes = []*CityRandomIncome{{City: "ALI", IncomeList: "0,0,1,1,2,3"}}

	got, err := s.CityRandomIncome("ALI", 6)
	if err != nil {
		t.Fatalf("CityRandomIncome: %v", err)
	}
	if got != 3 {
		t.Fatalf("CityRandomIncome(ALI, 6) = %d, want 3", got)
	}

	got, err = s.CityRandomIncome("ALB", 6)
	if err != nil || got != 0 {
		t.Fatalf("CityRandomIncome(ALB) = %d, %v; want 0, nil", got, err)
	}
}
