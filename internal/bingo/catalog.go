package bingo

// Catalog is the built-in subject pool. Every subject carries enough true
// facts (clubs, teammates, trophies, managers, plus nationality) to fill the
// 9 true tiles and enough decoys for the 7 traps.
var Catalog = []Subject{
	{
		ID:          "essien",
		Name:        "Michael Essien",
		Nationality: "Ghana",
		Position:    "Midfielder",
		YearsActive: "2000-2020",
		Clubs:       []string{"Olympique Lyonnais", "Chelsea", "Real Madrid", "AC Milan", "Bastia", "Panathinaikos"},
		Teammates:   []string{"Didier Drogba", "Frank Lampard", "Karim Benzema", "Juninho", "John Terry"},
		Trophies:    []string{"Ligue 1", "Premier League", "Champions League", "FA Cup"},
		Managers:    []string{"Jose Mourinho", "Carlo Ancelotti", "Guus Hiddink"},

		DecoyClubs:         []string{"Arsenal", "FC Barcelona", "Manchester United", "Inter Milan", "Marseille"},
		DecoyTeammates:     []string{"Thierry Henry", "Wayne Rooney", "Zlatan Ibrahimovic", "Ronaldinho"},
		DecoyTrophies:      []string{"World Cup", "Ballon d'Or", "Serie A"},
		DecoyManagers:      []string{"Arsene Wenger", "Pep Guardiola", "Alex Ferguson"},
		DecoyNationalities: []string{"Nigeria", "Cameroon", "France", "Ivory Coast"},
	},
	{
		ID:          "zidane",
		Name:        "Zinedine Zidane",
		Nationality: "France",
		Position:    "Midfielder",
		YearsActive: "1989-2006",
		Clubs:       []string{"AS Cannes", "Bordeaux", "Juventus", "Real Madrid"},
		Teammates:   []string{"Ronaldo", "David Beckham", "Didier Deschamps", "Thierry Henry", "Alessandro Del Piero"},
		Trophies:    []string{"World Cup", "Euro", "Champions League", "Ballon d'Or", "Serie A", "La Liga"},
		Managers:    []string{"Aime Jacquet", "Marcello Lippi", "Vicente del Bosque"},

		DecoyClubs:         []string{"Marseille", "PSG", "Manchester United", "AC Milan", "Bayern Munich"},
		DecoyTeammates:     []string{"Michel Platini", "Eric Cantona", "Diego Maradona", "Pele"},
		DecoyTrophies:      []string{"Copa America", "Premier League", "Africa Cup of Nations"},
		DecoyManagers:      []string{"Arsene Wenger", "Raymond Domenech", "Jose Mourinho"},
		DecoyNationalities: []string{"Algeria", "Spain", "Italy"},
	},
	{
		ID:          "cr7",
		Name:        "Cristiano Ronaldo",
		Nationality: "Portugal",
		Position:    "Forward",
		YearsActive: "2002-Present",
		Clubs:       []string{"Sporting CP", "Manchester United", "Real Madrid", "Juventus", "Al-Nassr"},
		Teammates:   []string{"Wayne Rooney", "Karim Benzema", "Luka Modric", "Paulo Dybala", "Sadio Mane"},
		Trophies:    []string{"Euro", "Champions League", "Ballon d'Or", "Premier League", "La Liga", "Serie A"},
		Managers:    []string{"Alex Ferguson", "Zinedine Zidane", "Carlo Ancelotti", "Jose Mourinho", "Erik ten Hag"},

		DecoyClubs:         []string{"FC Barcelona", "PSG", "Manchester City", "Chelsea", "Bayern Munich"},
		DecoyTeammates:     []string{"Lionel Messi", "Neymar", "Zlatan Ibrahimovic", "Ronaldinho"},
		DecoyTrophies:      []string{"World Cup", "Copa America", "Copa Libertadores"},
		DecoyManagers:      []string{"Pep Guardiola", "Jurgen Klopp", "Arsene Wenger"},
		DecoyNationalities: []string{"Brazil", "Spain", "Argentina"},
	},
	{
		ID:          "drogba",
		Name:        "Didier Drogba",
		Nationality: "Ivory Coast",
		Position:    "Forward",
		YearsActive: "1998-2018",
		Clubs:       []string{"Le Mans", "Guingamp", "Marseille", "Chelsea", "Galatasaray", "Montreal Impact"},
		Teammates:   []string{"Frank Lampard", "John Terry", "Michael Essien", "Eden Hazard", "Wesley Sneijder"},
		Trophies:    []string{"Champions League", "Premier League", "FA Cup", "Turkish Super Lig"},
		Managers:    []string{"Jose Mourinho", "Carlo Ancelotti", "Guus Hiddink", "Rafael Benitez"},

		DecoyClubs:         []string{"Arsenal", "Liverpool", "Real Madrid", "PSG", "AC Milan"},
		DecoyTeammates:     []string{"Thierry Henry", "Steven Gerrard", "Samuel Eto'o", "Yaya Toure"},
		DecoyTrophies:      []string{"World Cup", "Ballon d'Or", "La Liga"},
		DecoyManagers:      []string{"Arsene Wenger", "Pep Guardiola", "Didier Deschamps"},
		DecoyNationalities: []string{"Ghana", "Senegal", "Cameroon", "France"},
	},
}
