package playerstats

import "testing"

func TestDerivePerGame_RoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	r := PlayerSeasonRecord{
		GamesPlayed: 3,
		Minutes:     100,
		Points:      77,
		REB:         10,
		PlusMinus:   -7,
	}
	r.DerivePerGame()

	if r.MinutesPG != 33.3 {
		t.Fatalf("MinutesPG = %v, want 33.3", r.MinutesPG)
	}
	if r.PointsPG != 25.7 {
		t.Fatalf("PointsPG = %v, want 25.7", r.PointsPG)
	}
	if r.REBPG != 3.3 {
		t.Fatalf("REBPG = %v, want 3.3", r.REBPG)
	}
	if r.PlusMinusPG != -2.3 {
		t.Fatalf("PlusMinusPG = %v, want -2.3", r.PlusMinusPG)
	}
}

func TestRegularSeasonProfile_StrictGamesThreshold(t *testing.T) {
	t.Parallel()

	boundary := PlayerSeasonRecord{GamesPlayed: 10, MinutesPG: 30}
	if RegularSeasonProfile.Keep(boundary) {
		t.Fatal("GP=10 kept by regular season profile, want excluded")
	}
	above := PlayerSeasonRecord{GamesPlayed: 11, MinutesPG: 10.1}
	if !RegularSeasonProfile.Keep(above) {
		t.Fatal("GP=11 MIN_PG=10.1 excluded, want kept")
	}
	lowMinutes := PlayerSeasonRecord{GamesPlayed: 50, MinutesPG: 10}
	if RegularSeasonProfile.Keep(lowMinutes) {
		t.Fatal("MIN_PG=10 kept, want excluded (threshold is strict)")
	}
}

func TestPlayoffProfile_InclusiveGamesThreshold(t *testing.T) {
	t.Parallel()

	boundary := PlayerSeasonRecord{GamesPlayed: 4, MinutesPG: 25}
	if !PlayoffProfile.Keep(boundary) {
		t.Fatal("GP=4 excluded by playoff profile, want kept")
	}
	below := PlayerSeasonRecord{GamesPlayed: 3, MinutesPG: 40}
	if PlayoffProfile.Keep(below) {
		t.Fatal("GP=3 kept by playoff profile, want excluded")
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	t.Parallel()

	in := []PlayerSeasonRecord{
		{PlayerID: 1, GamesPlayed: 60, MinutesPG: 30},
		{PlayerID: 2, GamesPlayed: 5, MinutesPG: 30},
		{PlayerID: 3, GamesPlayed: 70, MinutesPG: 20},
	}
	out := RegularSeasonProfile.Apply(in)
	if len(out) != 2 || out[0].PlayerID != 1 || out[1].PlayerID != 3 {
		t.Fatalf("unexpected filter result: %+v", out)
	}
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	in := []PlayerSeasonRecord{
		{PlayerID: 1, GamesPlayed: 60, MinutesPG: 30},
		{PlayerID: 2, GamesPlayed: 5, MinutesPG: 30},
		{PlayerID: 3, GamesPlayed: 70, MinutesPG: 20},
		{PlayerID: 4, GamesPlayed: 11, MinutesPG: 10.1},
	}
	once := RegularSeasonProfile.Apply(in)
	twice := RegularSeasonProfile.Apply(once)

	if len(twice) != len(once) {
		t.Fatalf("second pass dropped rows: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if twice[i].PlayerID != once[i].PlayerID {
			t.Fatalf("row %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
	}
}
