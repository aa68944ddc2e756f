package domain

// Gender values accepted in an audience descriptor.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AgeRange bounds the targeted audience age, inclusive.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Location is a country with an optional state and city.
type Location struct {
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
}

// Audience describes who should see a campaign. Adapters translate it into
// each platform's own targeting vocabulary.
type Audience struct {
	AgeRange        AgeRange   `json:"ageRange"`
	Gender          []Gender   `json:"gender"`
	Locations       []Location `json:"locations"`
	Interests       []string   `json:"interests"`
	Languages       []string   `json:"languages,omitempty"`
	CustomAudiences []string   `json:"customAudiences,omitempty"`
}

// DefaultAudience mirrors the defaults applied when a campaign is created
// without an explicit audience.
func DefaultAudience() Audience {
	return Audience{
		AgeRange: AgeRange{Min: 18, Max: 65},
		Gender:   []Gender{GenderMale, GenderFemale, GenderOther},
	}
}
