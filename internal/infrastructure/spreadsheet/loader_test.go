package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	excelize "github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, dir, name string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, name)); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestNormalizeColumn(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Player Name": "PLAYER_NAME",
		"  w/l%  ":    "W/L%",
		"team":        "TEAM",
		"Off  Rating": "OFF_RATING",
		"":            "",
		"   ":         "",
	}
	for in, want := range cases {
		if got := NormalizeColumn(in); got != want {
			t.Fatalf("NormalizeColumn(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoader_NormalizesAndPads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWorkbook(t, dir, "standings.xlsx", [][]any{
		{"Western Conference", "Wins", "Losses", ""},
		{"Oklahoma City Thunder*", 68, 14, "ignored"},
		{"Portland Trail Blazers", 36},
		{},
	})

	table, err := NewLoader(dir).Load("standings.xlsx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Name != "standings" {
		t.Fatalf("Name = %q", table.Name)
	}
	want := []string{"WESTERN_CONFERENCE", "WINS", "LOSSES"}
	if len(table.Columns) != len(want) {
		t.Fatalf("Columns = %v, want %v (unnamed column dropped)", table.Columns, want)
	}
	for i := range want {
		if table.Columns[i] != want[i] {
			t.Fatalf("Columns[%d] = %q, want %q", i, table.Columns[i], want[i])
		}
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2 (blank row dropped)", len(table.Rows))
	}
	if got := table.Cell(table.Rows[1], "LOSSES"); got != "" {
		t.Fatalf("padded cell = %q, want empty", got)
	}
	if got := table.Cell(table.Rows[0], "WINS"); got != "68" {
		t.Fatalf("WINS = %q", got)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := NewLoader(t.TempDir()).Load("absent.xlsx"); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

func TestLoader_EmptySheet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := excelize.NewFile()
	if err := f.SaveAs(filepath.Join(dir, "empty.xlsx")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := NewLoader(dir).Load("empty.xlsx"); err == nil {
		t.Fatal("expected error for empty sheet")
	}
	_ = os.Remove(filepath.Join(dir, "empty.xlsx"))
}

func TestTable_SortByIntColumn(t *testing.T) {
	t.Parallel()

	table := &Table{
		Name:    "ratings",
		Columns: []string{"RK", "TEAM"},
		Rows: [][]string{
			{"3", "Nuggets"},
			{"", "Expansion"},
			{"1", "Thunder"},
			{"2", "Cavaliers"},
		},
	}
	table.SortByIntColumn("RK")

	wantOrder := []string{"Thunder", "Cavaliers", "Nuggets", "Expansion"}
	for i, want := range wantOrder {
		if got := table.Cell(table.Rows[i], "TEAM"); got != want {
			t.Fatalf("Rows[%d] TEAM = %q, want %q", i, got, want)
		}
	}

	before := table.Cell(table.Rows[0], "TEAM")
	table.SortByIntColumn("ABSENT")
	if got := table.Cell(table.Rows[0], "TEAM"); got != before {
		t.Fatalf("sort on missing column reordered rows: %q", got)
	}
}
