package form

// Choice is one option of a select input.
type Choice struct {
	Value string
	Label string
}

// States are the two-letter codes accepted for a venue or artist state.
var States = []Choice{
	{"AL", "AL"}, {"AK", "AK"}, {"AZ", "AZ"}, {"AR", "AR"}, {"CA", "CA"},
	{"CO", "CO"}, {"CT", "CT"}, {"DE", "DE"}, {"DC", "DC"}, {"FL", "FL"},
	{"GA", "GA"}, {"HI", "HI"}, {"ID", "ID"}, {"IL", "IL"}, {"IN", "IN"},
	{"IA", "IA"}, {"KS", "KS"}, {"KY", "KY"}, {"LA", "LA"}, {"ME", "ME"},
	{"MT", "MT"}, {"NE", "NE"}, {"NV", "NV"}, {"NH", "NH"}, {"NJ", "NJ"},
	{"NM", "NM"}, {"NY", "NY"}, {"NC", "NC"}, {"ND", "ND"}, {"OH", "OH"},
	{"OK", "OK"}, {"OR", "OR"}, {"MD", "MD"}, {"MA", "MA"}, {"MI", "MI"},
	{"MN", "MN"}, {"MS", "MS"}, {"MO", "MO"}, {"PA", "PA"}, {"RI", "RI"},
	{"SC", "SC"}, {"SD", "SD"}, {"TN", "TN"}, {"TX", "TX"}, {"UT", "UT"},
	{"VT", "VT"}, {"VA", "VA"}, {"WA", "WA"}, {"WV", "WV"}, {"WI", "WI"},
	{"WY", "WY"},
}

// Genres are the music genres a venue or artist can be tagged with.
var Genres = []Choice{
	{"Alternative", "Alternative"},
	{"Blues", "Blues"},
	{"Classical", "Classical"},
	{"Country", "Country"},
	{"Electronic", "Electronic"},
	{"Folk", "Folk"},
	{"Funk", "Funk"},
	{"Hip-Hop", "Hip-Hop"},
	{"Heavy Metal", "Heavy Metal"},
	{"Instrumental", "Instrumental"},
	{"Jazz", "Jazz"},
	{"Musical Theatre", "Musical Theatre"},
	{"Pop", "Pop"},
	{"Punk", "Punk"},
	{"R&B", "R&B"},
	{"Reggae", "Reggae"},
	{"Rock n Roll", "Rock n Roll"},
	{"Soul", "Soul"},
	{"Other", "Other"},
}

var (
	stateSet = valueSet(States)
	genreSet = valueSet(Genres)
)

func valueSet(cs []Choice) map[string]bool {
	m := make(map[string]bool, len(cs))
	for _, c := range cs {
		m[c.Value] = true
	}
	return m
}
