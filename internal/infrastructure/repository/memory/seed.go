package memory

import "github.com/riskibarqy/mockmaster/internal/domain/player"

// SeedPlayers is the development player pool: sixteen players per position, enough
// for a full twelve-round draft among four teams.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "nfl-qb-01", Name: "Josh Allen", Position: player.PositionQuarterback, Club: "BUF", Age: 28, StandardPoints: 379.4, PPRPoints: 379.4},
		{ID: "nfl-qb-02", Name: "Lamar Jackson", Position: player.PositionQuarterback, Club: "BAL", Age: 27, StandardPoints: 371.2, PPRPoints: 371.2},
		{ID: "nfl-qb-03", Name: "Jalen Hurts", Position: player.PositionQuarterback, Club: "PHI", Age: 26, StandardPoints: 352.8, PPRPoints: 352.8},
		{ID: "nfl-qb-04", Name: "Patrick Mahomes", Position: player.PositionQuarterback, Club: "KC", Age: 29, StandardPoints: 318.6, PPRPoints: 318.6},
		{ID: "nfl-qb-05", Name: "Joe Burrow", Position: player.PositionQuarterback, Club: "CIN", Age: 28, StandardPoints: 311.0, PPRPoints: 311.0},
		{ID: "nfl-qb-06", Name: "C.J. Stroud", Position: player.PositionQuarterback, Club: "HOU", Age: 23, StandardPoints: 284.5, PPRPoints: 284.5},
		{ID: "nfl-qb-07", Name: "Dak Prescott", Position: player.PositionQuarterback, Club: "DAL", Age: 31, StandardPoints: 279.9, PPRPoints: 279.9},
		{ID: "nfl-qb-08", Name: "Jordan Love", Position: player.PositionQuarterback, Club: "GB", Age: 26, StandardPoints: 271.3, PPRPoints: 271.3},
		{ID: "nfl-qb-09", Name: "Kyler Murray", Position: player.PositionQuarterback, Club: "ARI", Age: 27, StandardPoints: 266.7, PPRPoints: 266.7},
		{ID: "nfl-qb-10", Name: "Brock Purdy", Position: player.PositionQuarterback, Club: "SF", Age: 25, StandardPoints: 262.1, PPRPoints: 262.1},
		{ID: "nfl-qb-11", Name: "Jared Goff", Position: player.PositionQuarterback, Club: "DET", Age: 30, StandardPoints: 258.4, PPRPoints: 258.4},
		{ID: "nfl-qb-12", Name: "Tua Tagovailoa", Position: player.PositionQuarterback, Club: "MIA", Age: 26, StandardPoints: 249.0, PPRPoints: 249.0},
		{ID: "nfl-qb-13", Name: "Justin Herbert", Position: player.PositionQuarterback, Club: "LAC", Age: 26, StandardPoints: 241.6, PPRPoints: 241.6},
		{ID: "nfl-qb-14", Name: "Trevor Lawrence", Position: player.PositionQuarterback, Club: "JAX", Age: 25, StandardPoints: 236.2, PPRPoints: 236.2},
		{ID: "nfl-qb-15", Name: "Kirk Cousins", Position: player.PositionQuarterback, Club: "ATL", Age: 36, StandardPoints: 224.8, PPRPoints: 224.8},
		{ID: "nfl-qb-16", Name: "Matthew Stafford", Position: player.PositionQuarterback, Club: "LAR", Age: 36, StandardPoints: 219.5, PPRPoints: 219.5},

		{ID: "nfl-rb-01", Name: "Christian McCaffrey", Position: player.PositionRunningBack, Club: "SF", Age: 28, StandardPoints: 304.6, PPRPoints: 371.6},
		{ID: "nfl-rb-02", Name: "Saquon Barkley", Position: player.PositionRunningBack, Club: "PHI", Age: 27, StandardPoints: 296.3, PPRPoints: 329.3},
		{ID: "nfl-rb-03", Name: "Bijan Robinson", Position: player.PositionRunningBack, Club: "ATL", Age: 22, StandardPoints: 271.9, PPRPoints: 332.9},
		{ID: "nfl-rb-04", Name: "Jahmyr Gibbs", Position: player.PositionRunningBack, Club: "DET", Age: 22, StandardPoints: 268.4, PPRPoints: 320.4},
		{ID: "nfl-rb-05", Name: "Derrick Henry", Position: player.PositionRunningBack, Club: "BAL", Age: 30, StandardPoints: 262.0, PPRPoints: 281.0},
		{ID: "nfl-rb-06", Name: "Breece Hall", Position: player.PositionRunningBack, Club: "NYJ", Age: 23, StandardPoints: 221.5, PPRPoints: 278.5},
		{ID: "nfl-rb-07", Name: "Jonathan Taylor", Position: player.PositionRunningBack, Club: "IND", Age: 25, StandardPoints: 218.7, PPRPoints: 236.7},
		{ID: "nfl-rb-08", Name: "Kyren Williams", Position: player.PositionRunningBack, Club: "LAR", Age: 24, StandardPoints: 214.2, PPRPoints: 248.2},
		{ID: "nfl-rb-09", Name: "De'Von Achane", Position: player.PositionRunningBack, Club: "MIA", Age: 23, StandardPoints: 209.6, PPRPoints: 267.6},
		{ID: "nfl-rb-10", Name: "Josh Jacobs", Position: player.PositionRunningBack, Club: "GB", Age: 26, StandardPoints: 205.3, PPRPoints: 241.3},
		{ID: "nfl-rb-11", Name: "James Cook", Position: player.PositionRunningBack, Club: "BUF", Age: 25, StandardPoints: 199.8, PPRPoints: 231.8},
		{ID: "nfl-rb-12", Name: "Joe Mixon", Position: player.PositionRunningBack, Club: "HOU", Age: 28, StandardPoints: 194.1, PPRPoints: 230.1},
		{ID: "nfl-rb-13", Name: "Alvin Kamara", Position: player.PositionRunningBack, Club: "NO", Age: 29, StandardPoints: 188.9, PPRPoints: 256.9},
		{ID: "nfl-rb-14", Name: "Kenneth Walker", Position: player.PositionRunningBack, Club: "SEA", Age: 24, StandardPoints: 176.4, PPRPoints: 205.4},
		{ID: "nfl-rb-15", Name: "Isiah Pacheco", Position: player.PositionRunningBack, Club: "KC", Age: 25, StandardPoints: 168.0, PPRPoints: 196.0},
		{ID: "nfl-rb-16", Name: "Rachaad White", Position: player.PositionRunningBack, Club: "TB", Age: 25, StandardPoints: 161.7, PPRPoints: 215.7},

		{ID: "nfl-wr-01", Name: "CeeDee Lamb", Position: player.PositionWideReceiver, Club: "DAL", Age: 25, StandardPoints: 268.3, PPRPoints: 403.3},
		{ID: "nfl-wr-02", Name: "Tyreek Hill", Position: player.PositionWideReceiver, Club: "MIA", Age: 30, StandardPoints: 263.9, PPRPoints: 382.9},
		{ID: "nfl-wr-03", Name: "Ja'Marr Chase", Position: player.PositionWideReceiver, Club: "CIN", Age: 24, StandardPoints: 258.1, PPRPoints: 385.1},
		{ID: "nfl-wr-04", Name: "Justin Jefferson", Position: player.PositionWideReceiver, Club: "MIN", Age: 25, StandardPoints: 244.6, PPRPoints: 347.6},
		{ID: "nfl-wr-05", Name: "Amon-Ra St. Brown", Position: player.PositionWideReceiver, Club: "DET", Age: 25, StandardPoints: 240.2, PPRPoints: 359.2},
		{ID: "nfl-wr-06", Name: "A.J. Brown", Position: player.PositionWideReceiver, Club: "PHI", Age: 27, StandardPoints: 226.0, PPRPoints: 332.0},
		{ID: "nfl-wr-07", Name: "Puka Nacua", Position: player.PositionWideReceiver, Club: "LAR", Age: 23, StandardPoints: 214.5, PPRPoints: 319.5},
		{ID: "nfl-wr-08", Name: "Garrett Wilson", Position: player.PositionWideReceiver, Club: "NYJ", Age: 24, StandardPoints: 186.8, PPRPoints: 281.8},
		{ID: "nfl-wr-09", Name: "Mike Evans", Position: player.PositionWideReceiver, Club: "TB", Age: 31, StandardPoints: 201.3, PPRPoints: 280.3},
		{ID: "nfl-wr-10", Name: "Davante Adams", Position: player.PositionWideReceiver, Club: "NYJ", Age: 31, StandardPoints: 182.9, PPRPoints: 285.9},
		{ID: "nfl-wr-11", Name: "Nico Collins", Position: player.PositionWideReceiver, Club: "HOU", Age: 25, StandardPoints: 196.7, PPRPoints: 276.7},
		{ID: "nfl-wr-12", Name: "DK Metcalf", Position: player.PositionWideReceiver, Club: "SEA", Age: 26, StandardPoints: 178.4, PPRPoints: 244.4},
		{ID: "nfl-wr-13", Name: "Brandon Aiyuk", Position: player.PositionWideReceiver, Club: "SF", Age: 26, StandardPoints: 176.1, PPRPoints: 251.1},
		{ID: "nfl-wr-14", Name: "Stefon Diggs", Position: player.PositionWideReceiver, Club: "HOU", Age: 30, StandardPoints: 171.5, PPRPoints: 278.5},
		{ID: "nfl-wr-15", Name: "DeVonta Smith", Position: player.PositionWideReceiver, Club: "PHI", Age: 25, StandardPoints: 165.2, PPRPoints: 246.2},
		{ID: "nfl-wr-16", Name: "Chris Olave", Position: player.PositionWideReceiver, Club: "NO", Age: 24, StandardPoints: 158.9, PPRPoints: 245.9},

		{ID: "nfl-te-01", Name: "Sam LaPorta", Position: player.PositionTightEnd, Club: "DET", Age: 23, StandardPoints: 165.9, PPRPoints: 251.9},
		{ID: "nfl-te-02", Name: "Travis Kelce", Position: player.PositionTightEnd, Club: "KC", Age: 35, StandardPoints: 152.4, PPRPoints: 245.4},
		{ID: "nfl-te-03", Name: "Mark Andrews", Position: player.PositionTightEnd, Club: "BAL", Age: 29, StandardPoints: 140.1, PPRPoints: 201.1},
		{ID: "nfl-te-04", Name: "Trey McBride", Position: player.PositionTightEnd, Club: "ARI", Age: 25, StandardPoints: 136.6, PPRPoints: 217.6},
		{ID: "nfl-te-05", Name: "George Kittle", Position: player.PositionTightEnd, Club: "SF", Age: 31, StandardPoints: 147.3, PPRPoints: 212.3},
		{ID: "nfl-te-06", Name: "Evan Engram", Position: player.PositionTightEnd, Club: "JAX", Age: 30, StandardPoints: 111.4, PPRPoints: 225.4},
		{ID: "nfl-te-07", Name: "Dalton Kincaid", Position: player.PositionTightEnd, Club: "BUF", Age: 25, StandardPoints: 98.6, PPRPoints: 171.6},
		{ID: "nfl-te-08", Name: "David Njoku", Position: player.PositionTightEnd, Club: "CLE", Age: 28, StandardPoints: 124.2, PPRPoints: 205.2},
		{ID: "nfl-te-09", Name: "Kyle Pitts", Position: player.PositionTightEnd, Club: "ATL", Age: 24, StandardPoints: 95.3, PPRPoints: 148.3},
		{ID: "nfl-te-10", Name: "Jake Ferguson", Position: player.PositionTightEnd, Club: "DAL", Age: 25, StandardPoints: 101.8, PPRPoints: 172.8},
		{ID: "nfl-te-11", Name: "Dallas Goedert", Position: player.PositionTightEnd, Club: "PHI", Age: 29, StandardPoints: 92.5, PPRPoints: 151.5},
		{ID: "nfl-te-12", Name: "Cole Kmet", Position: player.PositionTightEnd, Club: "CHI", Age: 25, StandardPoints: 90.7, PPRPoints: 163.7},
		{ID: "nfl-te-13", Name: "Pat Freiermuth", Position: player.PositionTightEnd, Club: "PIT", Age: 26, StandardPoints: 76.9, PPRPoints: 114.9},
		{ID: "nfl-te-14", Name: "Dalton Schultz", Position: player.PositionTightEnd, Club: "HOU", Age: 28, StandardPoints: 88.4, PPRPoints: 147.4},
		{ID: "nfl-te-15", Name: "Tucker Kraft", Position: player.PositionTightEnd, Club: "GB", Age: 24, StandardPoints: 79.2, PPRPoints: 118.2},
		{ID: "nfl-te-16", Name: "Hunter Henry", Position: player.PositionTightEnd, Club: "NE", Age: 29, StandardPoints: 72.6, PPRPoints: 125.6},
	}
}
