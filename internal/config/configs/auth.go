package configs

// Auth configures verification of the bearer tokens issued by the identity
// service. Tokens are HS256 signed and carry the user id in the user_id claim.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// Issuer is checked against the iss claim when non-empty.
	Issuer string `env:"ISSUER" envDefault:"adfleet"`
}
