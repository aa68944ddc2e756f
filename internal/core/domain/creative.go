package domain

// CreativeType is the media kind of a creative.
type CreativeType string

const (
	CreativeImage    CreativeType = "image"
	CreativeVideo    CreativeType = "video"
	CreativeCarousel CreativeType = "carousel"
	CreativeText     CreativeType = "text"
)

// Creative represents an individual advertisement. Platforms that build an
// ad tree create one ad per creative.
type Creative struct {
	Type           CreativeType `json:"type"`
	Title          string       `json:"title,omitempty"`
	Description    string       `json:"description,omitempty"`
	MediaURL       string       `json:"mediaUrl,omitempty"`
	CallToAction   string       `json:"callToAction,omitempty"`
	DestinationURL string       `json:"destinationUrl,omitempty"`
}
