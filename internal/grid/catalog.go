package grid

// DefaultSubjects is the built-in career database the daily deck is drawn
// from. Every entry must satisfy at least one category in DefaultCategories
// or it can never be placed.
var DefaultSubjects = []Subject{
	{
		ID:          "messi",
		Name:        "Lionel Messi",
		Nationality: "Argentina",
		Clubs:       []string{"FC Barcelona", "Paris Saint-Germain", "Inter Miami"},
		Leagues:     []string{"La Liga", "Ligue 1", "MLS"},
		Trophies:    []string{"Champions League", "World Cup", "Copa America", "Ligue 1", "La Liga"},
		Awards:      []string{"Ballon d'Or", "Golden Boot"},
		Teammates:   []string{"Neymar", "Suarez", "Iniesta", "Xavi", "Mbappe"},
		Managers:    []string{"Pep Guardiola", "Luis Enrique"},
	},
	{
		ID:          "cr7",
		Name:        "Cristiano Ronaldo",
		Nationality: "Portugal",
		Clubs:       []string{"Sporting CP", "Manchester United", "Real Madrid", "Juventus", "Al-Nassr"},
		Leagues:     []string{"La Liga", "Premier League", "Serie A", "Saudi Pro League", "Liga Portugal"},
		Trophies:    []string{"Champions League", "Euro", "Premier League", "La Liga", "Serie A"},
		Awards:      []string{"Ballon d'Or", "Golden Boot"},
		Teammates:   []string{"Benzema", "Rooney", "Modric", "Bale", "Dybala"},
		Managers:    []string{"Alex Ferguson", "Zinedine Zidane", "Carlo Ancelotti", "Jose Mourinho"},
	},
	{
		ID:          "zidane",
		Name:        "Zinedine Zidane",
		Nationality: "France",
		Clubs:       []string{"AS Cannes", "Bordeaux", "Juventus", "Real Madrid"},
		Leagues:     []string{"Ligue 1", "Serie A", "La Liga"},
		Trophies:    []string{"Champions League", "World Cup", "Euro", "Serie A", "La Liga"},
		Awards:      []string{"Ballon d'Or"},
		Teammates:   []string{"Deschamps", "Henry", "Ronaldo", "Figo", "Beckham"},
		Managers:    []string{"Aime Jacquet", "Marcello Lippi"},
		Retired:     true,
	},
	{
		ID:          "henry",
		Name:        "Thierry Henry",
		Nationality: "France",
		Clubs:       []string{"AS Monaco", "Juventus", "Arsenal", "FC Barcelona", "New York Red Bulls"},
		Leagues:     []string{"Ligue 1", "Serie A", "Premier League", "La Liga", "MLS"},
		Trophies:    []string{"Champions League", "World Cup", "Euro", "Premier League", "La Liga", "Ligue 1"},
		Awards:      []string{},
		Teammates:   []string{"Bergkamp", "Vieira", "Messi", "Zidane"},
		Managers:    []string{"Arsene Wenger", "Pep Guardiola"},
		Retired:     true,
	},
	{
		ID:          "benzema",
		Name:        "Karim Benzema",
		Nationality: "France",
		Clubs:       []string{"Olympique Lyonnais", "Real Madrid", "Al-Ittihad"},
		Leagues:     []string{"Ligue 1", "La Liga", "Saudi Pro League"},
		Trophies:    []string{"Champions League", "Ligue 1", "La Liga", "Nations League"},
		Awards:      []string{"Ballon d'Or"},
		Teammates:   []string{"CR7", "Bale", "Vinicius Jr", "Juninho"},
		Managers:    []string{"Zinedine Zidane", "Carlo Ancelotti", "Jose Mourinho"},
	},
	{
		ID:          "modric",
		Name:        "Luka Modric",
		Nationality: "Croatia",
		Clubs:       []string{"Dinamo Zagreb", "Tottenham", "Real Madrid"},
		Leagues:     []string{"Premier League", "La Liga"},
		Trophies:    []string{"Champions League", "La Liga", "Copa del Rey"},
		Awards:      []string{"Ballon d'Or"},
		Teammates:   []string{"CR7", "Bale", "Benzema", "Kroos"},
		Managers:    []string{"Zinedine Zidane", "Carlo Ancelotti", "Jose Mourinho"},
	},
	{
		ID:          "neymar",
		Name:        "Neymar Jr",
		Nationality: "Brazil",
		Clubs:       []string{"Santos", "FC Barcelona", "Paris Saint-Germain", "Al-Hilal"},
		Leagues:     []string{"La Liga", "Ligue 1", "Saudi Pro League"},
		Trophies:    []string{"Champions League", "Libertadores", "La Liga", "Ligue 1", "Olympic Games"},
		Awards:      []string{},
		Teammates:   []string{"Messi", "Suarez", "Mbappe", "Verratti"},
		Managers:    []string{"Luis Enrique", "Thomas Tuchel"},
	},
	{
		ID:          "mbappe",
		Name:        "Kylian Mbappe",
		Nationality: "France",
		Clubs:       []string{"AS Monaco", "Paris Saint-Germain", "Real Madrid"},
		Leagues:     []string{"Ligue 1", "La Liga"},
		Trophies:    []string{"World Cup", "Ligue 1", "Nations League"},
		Awards:      []string{"World Cup Golden Boot"},
		Teammates:   []string{"Neymar", "Messi", "Benzema", "Griezmann"},
		Managers:    []string{"Didier Deschamps", "Thomas Tuchel"},
	},
	{
		ID:          "kante",
		Name:        "N'Golo Kante",
		Nationality: "France",
		Clubs:       []string{"US Boulogne", "SM Caen", "Leicester City", "Chelsea", "Al-Ittihad"},
		Leagues:     []string{"Ligue 1", "Premier League", "Saudi Pro League"},
		Trophies:    []string{"World Cup", "Champions League", "Premier League", "Europa League"},
		Awards:      []string{},
		Teammates:   []string{"Pogba", "Mahrez", "Hazard", "Benzema"},
		Managers:    []string{"Claudio Ranieri", "Antonio Conte", "Didier Deschamps", "Thomas Tuchel"},
	},
	{
		ID:          "zlatan",
		Name:        "Zlatan Ibrahimovic",
		Nationality: "Sweden",
		Clubs:       []string{"Malmo", "Ajax", "Juventus", "Inter Milan", "FC Barcelona", "AC Milan", "Paris Saint-Germain", "Manchester United", "LA Galaxy"},
		Leagues:     []string{"Serie A", "La Liga", "Ligue 1", "Premier League", "MLS", "Eredivisie"},
		Trophies:    []string{"Serie A", "La Liga", "Ligue 1", "Europa League"},
		Awards:      []string{},
		Teammates:   []string{"Messi", "Thiago Silva", "Pogba", "Cavani"},
		Managers:    []string{"Jose Mourinho", "Pep Guardiola", "Carlo Ancelotti"},
		Retired:     true,
	},
	{
		ID:          "ronaldinho",
		Name:        "Ronaldinho",
		Nationality: "Brazil",
		Clubs:       []string{"Gremio", "Paris Saint-Germain", "FC Barcelona", "AC Milan", "Flamengo", "Atletico Mineiro"},
		Leagues:     []string{"Ligue 1", "La Liga", "Serie A", "Brasileirao"},
		Trophies:    []string{"World Cup", "Champions League", "Copa America", "Libertadores", "La Liga", "Serie A"},
		Awards:      []string{"Ballon d'Or"},
		Teammates:   []string{"Ronaldo", "Rivaldo", "Messi", "Eto'o", "Deco"},
		Managers:    []string{"Luiz Felipe Scolari", "Frank Rijkaard", "Carlo Ancelotti"},
		Retired:     true,
	},
	{
		ID:          "buffon",
		Name:        "Gianluigi Buffon",
		Nationality: "Italy",
		Clubs:       []string{"Parma", "Juventus", "Paris Saint-Germain"},
		Leagues:     []string{"Serie A", "Ligue 1"},
		Trophies:    []string{"World Cup", "Serie A", "Ligue 1", "UEFA Cup"},
		Awards:      []string{},
		Teammates:   []string{"Cannavaro", "Del Piero", "Pirlo", "Chiellini", "Mbappe", "Verratti"},
		Managers:    []string{"Marcello Lippi", "Antonio Conte", "Massimiliano Allegri"},
		Retired:     true,
	},
	{
		ID:          "lewandowski",
		Name:        "Robert Lewandowski",
		Nationality: "Poland",
		Clubs:       []string{"Lech Poznan", "Borussia Dortmund", "Bayern Munich", "FC Barcelona"},
		Leagues:     []string{"Bundesliga", "La Liga"},
		Trophies:    []string{"Champions League", "Bundesliga", "La Liga"},
		Awards:      []string{"Golden Boot", "The Best"},
		Teammates:   []string{"Neuer", "Muller", "Reus", "Gundogan", "Pedri"},
		Managers:    []string{"Jurgen Klopp", "Pep Guardiola", "Hansi Flick", "Xavi"},
	},
	{
		ID:          "kroos",
		Name:        "Toni Kroos",
		Nationality: "Germany",
		Clubs:       []string{"Bayern Munich", "Bayer Leverkusen", "Real Madrid"},
		Leagues:     []string{"Bundesliga", "La Liga"},
		Trophies:    []string{"World Cup", "Champions League", "Bundesliga", "La Liga"},
		Awards:      []string{},
		Teammates:   []string{"Muller", "Schweinsteiger", "Modric", "Ronaldo", "Ramos"},
		Managers:    []string{"Jupp Heynckes", "Pep Guardiola", "Carlo Ancelotti", "Zinedine Zidane"},
		Retired:     true,
	},
	{
		ID:          "ramos",
		Name:        "Sergio Ramos",
		Nationality: "Spain",
		Clubs:       []string{"Sevilla FC", "Real Madrid", "Paris Saint-Germain"},
		Leagues:     []string{"La Liga", "Ligue 1"},
		Trophies:    []string{"World Cup", "Euro", "Champions League", "La Liga", "Ligue 1"},
		Awards:      []string{},
		Teammates:   []string{"Casillas", "Ronaldo", "Iniesta", "Pique", "Messi", "Neymar"},
		Managers:    []string{"Vicente del Bosque", "Jose Mourinho", "Zinedine Zidane", "Carlo Ancelotti"},
	},
	{
		ID:          "iniesta",
		Name:        "Andres Iniesta",
		Nationality: "Spain",
		Clubs:       []string{"FC Barcelona", "Vissel Kobe", "Emirates Club"},
		Leagues:     []string{"La Liga", "J-League"},
		Trophies:    []string{"World Cup", "Euro", "Champions League", "La Liga"},
		Awards:      []string{},
		Teammates:   []string{"Xavi", "Messi", "Puyol", "Busquets", "Villa"},
		Managers:    []string{"Pep Guardiola", "Vicente del Bosque", "Luis Enrique"},
		Retired:     true,
	},
}

// DefaultCategories is the built-in category pool. Daily generation samples
// GridSize of these, so the pool must stay at or above GridSize entries.
var DefaultCategories = []Category{
	{ID: "c-real", Type: TypeClub, Label: "Played for Real Madrid", Rule: Rule{Kind: RuleClub, Value: "Real Madrid"}},
	{ID: "c-barca", Type: TypeClub, Label: "Played for FC Barcelona", Rule: Rule{Kind: RuleClub, Value: "FC Barcelona"}},
	{ID: "c-psg", Type: TypeClub, Label: "Played for PSG", Rule: Rule{Kind: RuleClub, Value: "Paris Saint-Germain"}},
	{ID: "c-juve", Type: TypeClub, Label: "Played for Juventus", Rule: Rule{Kind: RuleClub, Value: "Juventus"}},
	{ID: "c-manutd", Type: TypeClub, Label: "Played for Man Utd", Rule: Rule{Kind: RuleClub, Value: "Manchester United"}},
	{ID: "c-bayern", Type: TypeClub, Label: "Played for Bayern Munich", Rule: Rule{Kind: RuleClub, Value: "Bayern Munich"}},
	{ID: "c-chelsea", Type: TypeClub, Label: "Played for Chelsea", Rule: Rule{Kind: RuleClub, Value: "Chelsea"}},
	{ID: "c-acmilan", Type: TypeClub, Label: "Played for AC Milan", Rule: Rule{Kind: RuleClub, Value: "AC Milan"}},

	{ID: "l-pl", Type: TypeLeague, Label: "Played in the Premier League", Rule: Rule{Kind: RuleLeague, Value: "Premier League"}},
	{ID: "l-l1", Type: TypeLeague, Label: "Played in Ligue 1", Rule: Rule{Kind: RuleLeague, Value: "Ligue 1"}},
	{ID: "l-seriea", Type: TypeLeague, Label: "Played in Serie A", Rule: Rule{Kind: RuleLeague, Value: "Serie A"}},

	{ID: "n-fra", Type: TypeCountry, Label: "French", Rule: Rule{Kind: RuleCountry, Value: "France"}},
	{ID: "n-bra", Type: TypeCountry, Label: "Brazilian", Rule: Rule{Kind: RuleCountry, Value: "Brazil"}},
	{ID: "n-arg", Type: TypeCountry, Label: "Argentine", Rule: Rule{Kind: RuleCountry, Value: "Argentina"}},
	{ID: "n-esp", Type: TypeCountry, Label: "Spanish", Rule: Rule{Kind: RuleCountry, Value: "Spain"}},

	{ID: "t-ucl", Type: TypeAward, Label: "Champions League winner", Rule: Rule{Kind: RuleTrophy, Value: "Champions League"}},
	{ID: "t-wc", Type: TypeAward, Label: "World Cup winner", Rule: Rule{Kind: RuleTrophy, Value: "World Cup"}},
	{ID: "t-bo", Type: TypeAward, Label: "Ballon d'Or", Rule: Rule{Kind: RuleAward, Value: "Ballon d'Or"}},

	{ID: "m-pep", Type: TypeStat, Label: "Coached by Guardiola", Rule: Rule{Kind: RuleManager, Value: "Pep Guardiola"}},
	{ID: "m-mou", Type: TypeStat, Label: "Coached by Mourinho", Rule: Rule{Kind: RuleManager, Value: "Jose Mourinho"}},
	{ID: "m-zizou", Type: TypeStat, Label: "Coached by Zidane", Rule: Rule{Kind: RuleManager, Value: "Zinedine Zidane"}},
	{ID: "m-carlo", Type: TypeStat, Label: "Coached by Ancelotti", Rule: Rule{Kind: RuleManager, Value: "Carlo Ancelotti"}},
}
