package classify

// competitionNames maps the source site's short competition labels to the
// full names this system stores. Checked for an exact match first, then
// as a case-insensitive substring against the raw label.
//
// Champions League qualifying-round labels fold into the Europa League
// entry rather than getting their own row.
var competitionNames = map[string]string{
	"Premier League": "Premier League",
	"La Liga":        "La Liga",
	"Bundesliga":     "Bundesliga",
	"Serie A":        "Serie A",
	"Ligue 1":        "Ligue 1",
	"Eredivisie":     "Eredivisie",
	"Primeira Liga":  "Primeira Liga",
	"Ekstraklasa":    "Ekstraklasa",

	"FA Cup":      "FA Cup",
	"Copa del Rey": "Copa del Rey",
	"DFB-Pokal":   "DFB-Pokal",
	"Coppa Italia": "Coppa Italia",
	"Coupe de France": "Coupe de France",

	"Champions Lg": "UEFA Champions League",
	"CL Qual":      "UEFA Europa League",
	"Europa Lg":    "UEFA Europa League",
	"Europa Conf":  "UEFA Europa Conference League",

	"WCQ":  "World Cup Qualifying",
	"UEFA Nations League": "UEFA Nations League",
	"Friendlies (M)":       "International Friendly",
}
