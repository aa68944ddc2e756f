package platform

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"adfleet/internal/core/domain"
)

const (
	layoutISO     = time.RFC3339
	layoutCompact = "20060102"
)

var (
	unitsPerCurrency  = decimal.NewFromInt(1)
	centsPerCurrency  = decimal.NewFromInt(100)
	microsPerCurrency = decimal.NewFromInt(1_000_000)
)

// Profile is everything that differs between two ad networks: endpoints,
// vocabulary, money unit and date format. The REST adapter is generic over
// it.
//
// Path templates may reference {account}, {id} (platform campaign id),
// {campaign} (campaign created in the same launch) and {group} (ad group
// created in the same launch).
type Profile struct {
	Platform domain.Platform
	BaseURL  string
	AuthURL  string
	TokenURL string
	Scopes   []string

	// MoneyMultiplier converts currency units into the native unit.
	MoneyMultiplier decimal.Decimal
	// SpendInNativeUnits is set when reports express money in native units.
	SpendInNativeUnits bool
	DateLayout         string

	StatusField   string
	ActiveStatus  string
	PausedStatus  string
	BudgetField   string
	CampaignExtra map[string]any

	CampaignPath string
	AdGroupPath  string
	AdGroupRef   string
	AdGroupExtra map[string]any
	AdPath       string
	AdRef        string

	ObjectPath     string
	InsightsPath   string
	InsightsFields string
	AccountsPath   string

	RevokePath       string
	RevokeMethod     string
	RevokeTokenParam string

	// TokenParam names the query parameter carrying the access token. The
	// token goes into an Authorization header when empty.
	TokenParam string

	Targeting     func(domain.Audience) map[string]any
	AccountActive func(adAccount) bool
}

// NativeAmount converts a currency amount into the value the platform
// expects in its budget field: an integer in cents or micros, or a fixed
// two-decimal string for platforms that take raw currency units.
func (p Profile) NativeAmount(v decimal.Decimal) any {
	if p.MoneyMultiplier.Equal(unitsPerCurrency) {
		return v.StringFixed(2)
	}
	return v.Mul(p.MoneyMultiplier).Round(0).IntPart()
}

// CurrencyAmount converts a reported amount back into currency units.
func (p Profile) CurrencyAmount(v decimal.Decimal) decimal.Decimal {
	if !p.SpendInNativeUnits || p.MoneyMultiplier.IsZero() {
		return v
	}
	return v.Div(p.MoneyMultiplier)
}

// FormatDate renders t in the platform's date convention.
func (p Profile) FormatDate(t time.Time) string {
	return t.UTC().Format(p.DateLayout)
}

func (p Profile) expand(tmpl, account, id, campaign, group string) string {
	if strings.HasPrefix(tmpl, "http://") || strings.HasPrefix(tmpl, "https://") {
		return tmpl
	}
	r := strings.NewReplacer(
		"{account}", escape(account),
		"{id}", escape(id),
		"{campaign}", escape(campaign),
		"{group}", escape(group),
	)
	return strings.TrimRight(p.BaseURL, "/") + r.Replace(tmpl)
}

func (p Profile) accountActive(a adAccount) bool {
	if p.AccountActive != nil {
		return p.AccountActive(a)
	}
	if a.AccountStatus != nil && *a.AccountStatus != 1 {
		return false
	}
	return a.Status == "" || strings.EqualFold(a.Status, "ACTIVE")
}

// Profiles returns the built-in profile of every supported network.
func Profiles() map[domain.Platform]Profile {
	return map[domain.Platform]Profile{
		domain.PlatformFacebook:  metaProfile(domain.PlatformFacebook, facebookTargeting),
		domain.PlatformInstagram: metaProfile(domain.PlatformInstagram, instagramTargeting),
		domain.PlatformGoogle:    googleAdsProfile(domain.PlatformGoogle, "SEARCH"),
		domain.PlatformYouTube:   googleAdsProfile(domain.PlatformYouTube, "VIDEO"),
		domain.PlatformLinkedIn:  linkedInProfile(),
		domain.PlatformTwitter:   twitterProfile(),
		domain.PlatformSnapchat:  snapchatProfile(),
	}
}

// Facebook and Instagram ads both go through the Graph marketing API.
func metaProfile(p domain.Platform, targeting func(domain.Audience) map[string]any) Profile {
	return Profile{
		Platform:        p,
		BaseURL:         "https://graph.facebook.com/v18.0",
		AuthURL:         "https://www.facebook.com/v18.0/dialog/oauth",
		TokenURL:        "https://graph.facebook.com/v18.0/oauth/access_token",
		Scopes:          []string{"ads_management", "ads_read"},
		MoneyMultiplier: centsPerCurrency,
		DateLayout:      layoutISO,
		StatusField:     "status",
		ActiveStatus:    "ACTIVE",
		PausedStatus:    "PAUSED",
		BudgetField:     "daily_budget",
		CampaignExtra: map[string]any{
			"objective":             "CONVERSIONS",
			"special_ad_categories": []string{},
		},
		CampaignPath: "/{account}/campaigns",
		AdGroupPath:  "/{account}/adsets",
		AdGroupRef:   "campaign_id",
		AdGroupExtra: map[string]any{
			"optimization_goal": "CONVERSIONS",
			"billing_event":     "IMPRESSIONS",
			"bid_amount":        500,
		},
		AdPath:         "/{account}/ads",
		AdRef:          "adset_id",
		ObjectPath:     "/{id}",
		InsightsPath:   "/{id}/insights",
		InsightsFields: "impressions,clicks,spend,cpc,ctr,conversions,cost_per_conversion",
		AccountsPath:   "/me/adaccounts?fields=id,name,account_status",
		RevokePath:     "/me/permissions",
		RevokeMethod:   "DELETE",
		TokenParam:     "access_token",
		Targeting:      targeting,
		AccountActive: func(a adAccount) bool {
			return a.AccountStatus != nil && *a.AccountStatus == 1
		},
	}
}

// Google and YouTube campaigns both go through the Google Ads API and only
// differ in advertising channel.
func googleAdsProfile(p domain.Platform, channel string) Profile {
	return Profile{
		Platform:           p,
		BaseURL:            "https://googleads.googleapis.com/v15",
		AuthURL:            "https://accounts.google.com/o/oauth2/auth",
		TokenURL:           "https://oauth2.googleapis.com/token",
		Scopes:             []string{"https://www.googleapis.com/auth/adwords"},
		MoneyMultiplier:    microsPerCurrency,
		SpendInNativeUnits: true,
		DateLayout:         layoutCompact,
		StatusField:        "status",
		ActiveStatus:       "ENABLED",
		PausedStatus:       "PAUSED",
		BudgetField:        "amount_micros",
		CampaignExtra: map[string]any{
			"advertising_channel_type": channel,
		},
		CampaignPath:     "/customers/{account}/campaigns",
		AdGroupPath:      "/customers/{account}/adGroups",
		AdGroupRef:       "campaign",
		AdPath:           "/customers/{account}/adGroupAds",
		AdRef:            "ad_group",
		ObjectPath:       "/customers/{account}/campaigns/{id}",
		InsightsPath:     "/customers/{account}/campaigns/{id}/metrics",
		AccountsPath:     "/customers:listAccessibleCustomers",
		RevokePath:       "https://oauth2.googleapis.com/revoke",
		RevokeMethod:     "POST",
		RevokeTokenParam: "token",
		Targeting:        googleTargeting,
	}
}

func linkedInProfile() Profile {
	return Profile{
		Platform:        domain.PlatformLinkedIn,
		BaseURL:         "https://api.linkedin.com/rest",
		AuthURL:         "https://www.linkedin.com/oauth/v2/authorization",
		TokenURL:        "https://www.linkedin.com/oauth/v2/accessToken",
		Scopes:          []string{"r_ads", "rw_ads", "r_ads_reporting"},
		MoneyMultiplier: unitsPerCurrency,
		DateLayout:      layoutISO,
		StatusField:     "status",
		ActiveStatus:    "ACTIVE",
		PausedStatus:    "PAUSED",
		BudgetField:     "dailyBudget",
		CampaignPath:    "/adAccounts/{account}/adCampaigns",
		ObjectPath:      "/adAccounts/{account}/adCampaigns/{id}",
		InsightsPath:    "/adAccounts/{account}/adCampaigns/{id}/analytics",
		AccountsPath:    "/adAccounts?q=search",
		Targeting:       namedTargeting,
	}
}

func twitterProfile() Profile {
	return Profile{
		Platform:           domain.PlatformTwitter,
		BaseURL:            "https://ads-api.twitter.com/12",
		AuthURL:            "https://twitter.com/i/oauth2/authorize",
		TokenURL:           "https://api.twitter.com/2/oauth2/token",
		Scopes:             []string{"tweet.read", "users.read", "offline.access"},
		MoneyMultiplier:    microsPerCurrency,
		SpendInNativeUnits: true,
		DateLayout:         layoutISO,
		StatusField:        "entity_status",
		ActiveStatus:       "ACTIVE",
		PausedStatus:       "PAUSED",
		BudgetField:        "daily_budget_amount_local_micro",
		CampaignPath:       "/accounts/{account}/campaigns",
		AdGroupPath:        "/accounts/{account}/line_items",
		AdGroupRef:         "campaign_id",
		AdGroupExtra: map[string]any{
			"objective": "WEBSITE_CLICKS",
			"placements": []string{
				"ALL_ON_TWITTER",
			},
		},
		ObjectPath:       "/accounts/{account}/campaigns/{id}",
		InsightsPath:     "/stats/accounts/{account}/campaigns/{id}",
		AccountsPath:     "/accounts",
		RevokePath:       "https://api.twitter.com/2/oauth2/revoke",
		RevokeMethod:     "POST",
		RevokeTokenParam: "token",
		Targeting:        namedTargeting,
	}
}

func snapchatProfile() Profile {
	return Profile{
		Platform:           domain.PlatformSnapchat,
		BaseURL:            "https://adsapi.snapchat.com/v1",
		AuthURL:            "https://accounts.snapchat.com/login/oauth2/authorize",
		TokenURL:           "https://accounts.snapchat.com/login/oauth2/access_token",
		Scopes:             []string{"snapchat-marketing-api"},
		MoneyMultiplier:    microsPerCurrency,
		SpendInNativeUnits: true,
		DateLayout:         layoutISO,
		StatusField:        "status",
		ActiveStatus:       "ACTIVE",
		PausedStatus:       "PAUSED",
		BudgetField:        "daily_budget_micro",
		CampaignPath:       "/adaccounts/{account}/campaigns",
		AdGroupPath:        "/campaigns/{campaign}/adsquads",
		AdGroupRef:         "campaign_id",
		AdGroupExtra: map[string]any{
			"type":              "SNAP_ADS",
			"optimization_goal": "SWIPES",
			"billing_event":     "IMPRESSION",
		},
		AdPath:       "/adsquads/{group}/ads",
		AdRef:        "ad_squad_id",
		ObjectPath:   "/campaigns/{id}",
		InsightsPath: "/campaigns/{id}/stats",
		AccountsPath: "/me/adaccounts",
		Targeting:    namedTargeting,
	}
}
