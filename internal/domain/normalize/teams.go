package normalize

// knownTeams holds the 32 canonical team abbreviations used by the
// snapshot provider. Rows carrying any other code are dropped.
var knownTeams = map[string]struct{}{
	"ARI": {}, "ATL": {}, "BAL": {}, "BUF": {},
	"CAR": {}, "CHI": {}, "CIN": {}, "CLE": {},
	"DAL": {}, "DEN": {}, "DET": {}, "GB": {},
	"HOU": {}, "IND": {}, "JAX": {}, "KC": {},
	"LA": {}, "LAC": {}, "LV": {}, "MIA": {},
	"MIN": {}, "NE": {}, "NO": {}, "NYG": {},
	"NYJ": {}, "PHI": {}, "PIT": {}, "SEA": {},
	"SF": {}, "TB": {}, "TEN": {}, "WAS": {},
}

// KnownTeam reports whether code is one of the 32 canonical
// abbreviations.
func KnownTeam(code string) bool {
	_, ok := knownTeams[code]
	return ok
}
