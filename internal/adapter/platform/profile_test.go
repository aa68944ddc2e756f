package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"adfleet/internal/core/domain"
)

func TestProfiles_CoverEveryPlatform(t *testing.T) {
	profiles := Profiles()
	for _, p := range domain.Platforms {
		prof, ok := profiles[p]
		if assert.True(t, ok, p) {
			assert.Equal(t, p, prof.Platform)
			assert.NotEmpty(t, prof.CampaignPath, p)
			assert.NotEmpty(t, prof.ObjectPath, p)
			assert.NotNil(t, prof.Targeting, p)
		}
	}
}

func TestProfile_NativeAmount(t *testing.T) {
	profiles := Profiles()

	assert.Equal(t, int64(1234), profiles[domain.PlatformFacebook].NativeAmount(dec("12.34")))
	assert.Equal(t, int64(1_500_000), profiles[domain.PlatformGoogle].NativeAmount(dec("1.5")))
	assert.Equal(t, int64(2_000_000), profiles[domain.PlatformSnapchat].NativeAmount(dec("2")))
	assert.Equal(t, "10.00", profiles[domain.PlatformLinkedIn].NativeAmount(dec("10")))
}

func TestProfile_CurrencyAmount(t *testing.T) {
	profiles := Profiles()

	assert.True(t, dec("3.25").Equal(profiles[domain.PlatformTwitter].CurrencyAmount(dec("3250000"))))
	assert.True(t, dec("3.25").Equal(profiles[domain.PlatformFacebook].CurrencyAmount(dec("3.25"))))
}

func TestProfile_FormatDate(t *testing.T) {
	at := time.Date(2025, 6, 9, 15, 4, 5, 0, time.FixedZone("CET", 3600))
	profiles := Profiles()

	assert.Equal(t, "20250609", profiles[domain.PlatformYouTube].FormatDate(at))
	assert.Equal(t, "2025-06-09T14:04:05Z", profiles[domain.PlatformLinkedIn].FormatDate(at))
}

func TestProfile_AccountActive(t *testing.T) {
	one, two := 1, 2
	fb := Profiles()[domain.PlatformFacebook]
	li := Profiles()[domain.PlatformLinkedIn]

	assert.True(t, fb.accountActive(adAccount{ID: "a", AccountStatus: &one}))
	assert.False(t, fb.accountActive(adAccount{ID: "a", AccountStatus: &two}))
	assert.False(t, fb.accountActive(adAccount{ID: "a"}))

	assert.True(t, li.accountActive(adAccount{ID: "a"}))
	assert.True(t, li.accountActive(adAccount{ID: "a", Status: "ACTIVE"}))
	assert.False(t, li.accountActive(adAccount{ID: "a", Status: "CANCELED"}))
}
