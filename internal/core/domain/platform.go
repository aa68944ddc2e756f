package domain

// Platform identifies one of the external advertising networks a campaign
// can be pushed to.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformGoogle    Platform = "google"
	PlatformYouTube   Platform = "youtube"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformSnapchat  Platform = "snapchat"
	PlatformInstagram Platform = "instagram"
)

// Platforms lists every supported network in a stable order.
var Platforms = []Platform{
	PlatformFacebook,
	PlatformGoogle,
	PlatformYouTube,
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformSnapchat,
	PlatformInstagram,
}

// IsValid reports whether p is one of the supported networks.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformGoogle, PlatformYouTube, PlatformLinkedIn,
		PlatformTwitter, PlatformSnapchat, PlatformInstagram:
		return true
	default:
		return false
	}
}

func (p Platform) String() string {
	return string(p)
}
