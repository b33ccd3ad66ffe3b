package library

// SeedTracks returns the sample catalogue written by Store.Reset, in insertion
// order.
func SeedTracks() []Track {
	return []Track{
		{Name: "Raabta", Genre: "Romantic", ReleaseYear: 2012, Artist: "Arijit Singh", Album: "Agent Vinod", Duration: 4},
		{Name: "Naina Da Kya Kasoor", Genre: "Pop", ReleaseYear: 2018, Artist: "Amit Trivedi", Album: "Andhadhun", Duration: 3},
		{Name: "Ghoomar", Genre: "Traditional", ReleaseYear: 2018, Artist: "Shreya Ghoshal", Album: "Padmaavat", Duration: 3},
		{Name: "Bekhayali", Genre: "Rock", ReleaseYear: 2019, Artist: "Sachet Tandon", Album: "Kabir Singh", Duration: 6},
		{Name: "Hawa Banke", Genre: "Romantic", ReleaseYear: 2019, Artist: "Darshan Raval", Album: "Hawa Banke (Single)", Duration: 3},
		{Name: "Ghungroo", Genre: "Dance", ReleaseYear: 2019, Artist: "Arijit Singh", Album: "War", Duration: 5},
		{Name: "Makhna", Genre: "Hip-Hop", ReleaseYear: 2019, Artist: "Tanishk Bagchi", Album: "Drive", Duration: 3},
		{Name: "Tera Ban Jaunga", Genre: "Romantic", ReleaseYear: 2019, Artist: "Tulsi Kumar", Album: "Kabir Singh", Duration: 3},
		{Name: "First Class", Genre: "Dance", ReleaseYear: 2019, Artist: "Arijit Singh", Album: "Kalank", Duration: 4},
		{Name: "Kalank Title Track", Genre: "Romantic", ReleaseYear: 2019, Artist: "Arijit Singh", Album: "Kalank", Duration: 5},
	}
}
