package team

// Unknown is the sentinel returned for any lookup key outside the franchise
// enumeration. Rows carrying it stay traceable and filterable downstream.
const Unknown = "Unknown"

// Franchise is one of the 30 league teams. ID is the stats provider's numeric
// team id, used by the roster fetcher.
type Franchise struct {
	ID           int64
	Abbreviation string
	Name         string
}

// Franchises is the closed set of valid league teams. Provider rows outside
// this set (all-star artifacts, international exhibition squads) are dropped
// by the season stats fetcher.
// ByID resolves a provider numeric team id to its franchise.
func ByID(id int64) (Franchise, bool) {
	for _, f := range Franchises {
		if f.ID == id {
			return f, true
		}
	}
	return Franchise{}, false
}

var Franchises = []Franchise{
	{ID: 1610612737, Abbreviation: "ATL", Name: "Atlanta Hawks"},
	{ID: 1610612738, Abbreviation: "BOS", Name: "Boston Celtics"},
	{ID: 1610612751, Abbreviation: "BKN", Name: "Brooklyn Nets"},
	{ID: 1610612766, Abbreviation: "CHA", Name: "Charlotte Hornets"},
	{ID: 1610612741, Abbreviation: "CHI", Name: "Chicago Bulls"},
	{ID: 1610612739, Abbreviation: "CLE", Name: "Cleveland Cavaliers"},
	{ID: 1610612742, Abbreviation: "DAL", Name: "Dallas Mavericks"},
	{ID: 1610612743, Abbreviation: "DEN", Name: "Denver Nuggets"},
	{ID: 1610612765, Abbreviation: "DET", Name: "Detroit Pistons"},
	{ID: 1610612744, Abbreviation: "GSW", Name: "Golden State Warriors"},
	{ID: 1610612745, Abbreviation: "HOU", Name: "Houston Rockets"},
	{ID: 1610612754, Abbreviation: "IND", Name: "Indiana Pacers"},
	{ID: 1610612746, Abbreviation: "LAC", Name: "Los Angeles Clippers"},
	{ID: 1610612747, Abbreviation: "LAL", Name: "Los Angeles Lakers"},
	{ID: 1610612763, Abbreviation: "MEM", Name: "Memphis Grizzlies"},
	{ID: 1610612748, Abbreviation: "MIA", Name: "Miami Heat"},
	{ID: 1610612749, Abbreviation: "MIL", Name: "Milwaukee Bucks"},
	{ID: 1610612750, Abbreviation: "MIN", Name: "Minnesota Timberwolves"},
	{ID: 1610612740, Abbreviation: "NOP", Name: "New Orleans Pelicans"},
	{ID: 1610612752, Abbreviation: "NYK", Name: "New York Knicks"},
	{ID: 1610612760, Abbreviation: "OKC", Name: "Oklahoma City Thunder"},
	{ID: 1610612753, Abbreviation: "ORL", Name: "Orlando Magic"},
	{ID: 1610612755, Abbreviation: "PHI", Name: "Philadelphia 76ers"},
	{ID: 1610612756, Abbreviation: "PHX", Name: "Phoenix Suns"},
	{ID: 1610612757, Abbreviation: "POR", Name: "Portland Trail Blazers"},
	{ID: 1610612758, Abbreviation: "SAC", Name: "Sacramento Kings"},
	{ID: 1610612759, Abbreviation: "SAS", Name: "San Antonio Spurs"},
	{ID: 1610612761, Abbreviation: "TOR", Name: "Toronto Raptors"},
	{ID: 1610612762, Abbreviation: "UTA", Name: "Utah Jazz"},
	{ID: 1610612764, Abbreviation: "WAS", Name: "Washington Wizards"},
}
