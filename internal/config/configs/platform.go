package configs

// Platform holds OAuth client settings and endpoint overrides for one ad
// network. Empty URLs fall back to the network's production endpoints. With
// Simulated set the network is served by the deterministic simulator.
type Platform struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"`
	APIURL       string `env:"API_URL"`
	AuthURL      string `env:"AUTH_URL"`
	TokenURL     string `env:"TOKEN_URL"`
	Simulated    bool   `env:"SIMULATED" envDefault:"true"`
}

// Platforms groups the per-network settings.
type Platforms struct {
	Facebook  Platform `envPrefix:"FACEBOOK_"`
	Google    Platform `envPrefix:"GOOGLE_"`
	YouTube   Platform `envPrefix:"YOUTUBE_"`
	LinkedIn  Platform `envPrefix:"LINKEDIN_"`
	Twitter   Platform `envPrefix:"TWITTER_"`
	Snapchat  Platform `envPrefix:"SNAPCHAT_"`
	Instagram Platform `envPrefix:"INSTAGRAM_"`
}

// ByName returns the settings keyed by platform identifier.
func (p Platforms) ByName() map[string]Platform {
	return map[string]Platform{
		"facebook":  p.Facebook,
		"google":    p.Google,
		"youtube":   p.YouTube,
		"linkedin":  p.LinkedIn,
		"twitter":   p.Twitter,
		"snapchat":  p.Snapchat,
		"instagram": p.Instagram,
	}
}
