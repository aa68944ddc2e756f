package platform

import (
	"net/url"
	"strings"

	"adfleet/internal/core/domain"
)

var (
	facebookGenders = map[domain.Gender]int{
		domain.GenderMale:   1,
		domain.GenderFemale: 2,
	}
	// Google Ads gender criterion ids.
	googleGenders = map[domain.Gender]int{
		domain.GenderMale:   10,
		domain.GenderFemale: 11,
		domain.GenderOther:  20,
	}
	namedGenders = map[domain.Gender]string{
		domain.GenderMale:   "MALE",
		domain.GenderFemale: "FEMALE",
	}
)

var callToActions = map[string]string{
	"Learn More": "LEARN_MORE",
	"Sign Up":    "SIGN_UP",
	"Download":   "DOWNLOAD",
	"Shop Now":   "SHOP_NOW",
	"Book Now":   "BOOK_TRAVEL",
	"Contact Us": "CONTACT_US",
	"Apply Now":  "APPLY_NOW",
	"Subscribe":  "SUBSCRIBE",
}

type geoKey struct {
	Key string `json:"key"`
}

type geoBuckets struct {
	Countries []string `json:"countries"`
	Regions   []geoKey `json:"regions,omitempty"`
	Cities    []geoKey `json:"cities,omitempty"`
}

type namedInterest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func facebookTargeting(a domain.Audience) map[string]any {
	interests := make([]namedInterest, 0, len(a.Interests))
	for _, i := range a.Interests {
		interests = append(interests, namedInterest{ID: i, Name: i})
	}
	return map[string]any{
		"age_min":       a.AgeRange.Min,
		"age_max":       a.AgeRange.Max,
		"genders":       genderCodes(a.Gender, facebookGenders),
		"geo_locations": bucketLocations(a.Locations),
		"interests":     interests,
	}
}

func instagramTargeting(a domain.Audience) map[string]any {
	t := facebookTargeting(a)
	t["publisher_platforms"] = []string{"instagram"}
	return t
}

func googleTargeting(a domain.Audience) map[string]any {
	return map[string]any{
		"age_range": map[string]int{"min": a.AgeRange.Min, "max": a.AgeRange.Max},
		"genders":   genderCodes(a.Gender, googleGenders),
		"locations": flatLocations(a.Locations),
		"interests": nonNil(a.Interests),
		"languages": nonNil(a.Languages),
	}
}

func namedTargeting(a domain.Audience) map[string]any {
	return map[string]any{
		"age_min":   a.AgeRange.Min,
		"age_max":   a.AgeRange.Max,
		"genders":   genderCodes(a.Gender, namedGenders),
		"locations": flatLocations(a.Locations),
		"interests": nonNil(a.Interests),
	}
}

// genderCodes maps genders through table, dropping values the platform
// cannot target.
func genderCodes[T any](genders []domain.Gender, table map[domain.Gender]T) []T {
	out := make([]T, 0, len(genders))
	for _, g := range genders {
		if code, ok := table[g]; ok {
			out = append(out, code)
		}
	}
	return out
}

func bucketLocations(locations []domain.Location) geoBuckets {
	b := geoBuckets{Countries: []string{}}
	for _, l := range locations {
		if l.Country != "" {
			b.Countries = append(b.Countries, l.Country)
		}
		if l.State != "" {
			b.Regions = append(b.Regions, geoKey{Key: l.State})
		}
		if l.City != "" {
			b.Cities = append(b.Cities, geoKey{Key: l.City})
		}
	}
	return b
}

// flatLocations renders each location as country[:state[:city]].
func flatLocations(locations []domain.Location) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		parts := make([]string, 0, 3)
		for _, p := range []string{l.Country, l.State, l.City} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, ":"))
		}
	}
	return out
}

func callToAction(label string) string {
	if cta, ok := callToActions[label]; ok {
		return cta
	}
	return "LEARN_MORE"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func escape(s string) string {
	return url.PathEscape(s)
}
