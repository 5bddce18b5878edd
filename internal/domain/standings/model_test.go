package standings

import "testing"

func TestSplitPlayoffMarker(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		name    string
		playoff bool
	}{
		{"Boston Celtics*", "Boston Celtics", true},
		{"Boston Celtics *", "Boston Celtics", true},
		{"Detroit Pistons", "Detroit Pistons", false},
		{"  Miami Heat*  ", "Miami Heat", true},
	}
	for _, c := range cases {
		name, playoff := SplitPlayoffMarker(c.in)
		if name != c.name || playoff != c.playoff {
			t.Fatalf("SplitPlayoffMarker(%q) = (%q, %v), want (%q, %v)", c.in, name, playoff, c.name, c.playoff)
		}
	}
}

func TestParseStanding(t *testing.T) {
	t.Parallel()

	st := ParseStanding("WESTERN_CONFERENCE", 1, "Oklahoma City Thunder*", "68", "14")
	if !st.PlayoffTeam || st.Team != "Oklahoma City Thunder" {
		t.Fatalf("unexpected standing %+v", st)
	}
	if st.Rank != 1 || st.Wins != 68 || st.Losses != 14 {
		t.Fatalf("unexpected standing %+v", st)
	}
	if st.WinPct < 0.829 || st.WinPct > 0.830 {
		t.Fatalf("WinPct = %v", st.WinPct)
	}
	if st.Conference != "WESTERN_CONFERENCE" {
		t.Fatalf("Conference = %q", st.Conference)
	}

	zero := ParseStanding("EASTERN_CONFERENCE", 15, "Expansion Team", "", "")
	if zero.WinPct != 0 || zero.PlayoffTeam {
		t.Fatalf("unexpected standing %+v", zero)
	}
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	r, ok := ParseRating("Oklahoma City Thunder", "OKC", "119.2", "106.6", "12.6")
	if !ok {
		t.Fatal("expected numeric ratings to parse")
	}
	if r.OffensiveRtg != 119.2 || r.DefensiveRtg != 106.6 || r.NetRtg != 12.6 {
		t.Fatalf("unexpected rating %+v", r)
	}

	if _, ok := ParseRating("Cleveland Cavaliers", "CLE", "n/a", "109.9", "8.4"); ok {
		t.Fatal("expected non-numeric rating to report failure")
	}
}
