package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.PlatformAdapter = (*RESTAdapter)(nil)

// RESTAdapter talks to one ad network's HTTP API. Everything that differs
// between networks lives in its Profile.
type RESTAdapter struct {
	profile Profile
	oauth   oauth2.Config
	client  *http.Client
	now     func() time.Time
}

// NewRESTAdapter applies the non-empty overrides in cfg to profile.
func NewRESTAdapter(profile Profile, cfg configs.Platform, client *http.Client) *RESTAdapter {
	if cfg.APIURL != "" {
		profile.BaseURL = cfg.APIURL
	}
	if cfg.AuthURL != "" {
		profile.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		profile.TokenURL = cfg.TokenURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RESTAdapter{
		profile: profile,
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       profile.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  profile.AuthURL,
				TokenURL: profile.TokenURL,
			},
		},
		client: client,
		now:    time.Now,
	}
}

func (a *RESTAdapter) Platform() domain.Platform {
	return a.profile.Platform
}

// Launch creates the campaign and, for networks that need one, an ad group
// with one ad per creative. Entities already created are left in place when a
// later step fails.
func (a *RESTAdapter) Launch(ctx context.Context, c *domain.Campaign, conn domain.PlatformConnection) (*port.LaunchResult, error) {
	slot, err := a.precheck(c, conn)
	if err != nil {
		return nil, a.fail(port.OpLaunch, err)
	}

	p := a.profile
	token, account := conn.Credentials.AccessToken, conn.Credentials.AccountID

	campaignID, err := a.create(ctx, p.expand(p.CampaignPath, account, "", "", ""), token, a.campaignPayload(c, slot))
	if err != nil {
		return nil, a.fail(port.OpLaunch, fmt.Errorf("create campaign: %w", err))
	}

	data := map[string]any{}
	if p.AdGroupPath != "" {
		groupID, err := a.create(ctx, p.expand(p.AdGroupPath, account, "", campaignID, ""), token, a.adGroupPayload(c, slot, campaignID))
		if err != nil {
			return nil, a.fail(port.OpLaunch, fmt.Errorf("create ad group: %w", err))
		}
		data["adGroupId"] = groupID

		if p.AdPath != "" {
			adIDs := make([]string, 0, len(c.Creatives))
			for i, cr := range c.Creatives {
				adID, err := a.create(ctx, p.expand(p.AdPath, account, "", campaignID, groupID), token, a.adPayload(c, cr, i, groupID))
				if err != nil {
					return nil, a.fail(port.OpLaunch, fmt.Errorf("create ad %d: %w", i, err))
				}
				adIDs = append(adIDs, adID)
			}
			data["adIds"] = adIDs
		}
	}

	return &port.LaunchResult{
		PlatformCampaignID: campaignID,
		Status:             p.ActiveStatus,
		PlatformData:       data,
	}, nil
}

func (a *RESTAdapter) Pause(ctx context.Context, platformCampaignID string, conn domain.PlatformConnection) error {
	return a.setStatus(ctx, port.OpPause, platformCampaignID, conn, a.profile.PausedStatus)
}

func (a *RESTAdapter) Resume(ctx context.Context, platformCampaignID string, conn domain.PlatformConnection) error {
	return a.setStatus(ctx, port.OpResume, platformCampaignID, conn, a.profile.ActiveStatus)
}

func (a *RESTAdapter) setStatus(ctx context.Context, op port.Operation, id string, conn domain.PlatformConnection, status string) error {
	if err := a.checkObject(id, conn); err != nil {
		return a.fail(op, err)
	}
	target := a.profile.expand(a.profile.ObjectPath, conn.Credentials.AccountID, id, "", "")
	payload := map[string]any{a.profile.StatusField: status}
	if _, _, err := a.do(ctx, http.MethodPost, target, conn.Credentials.AccessToken, payload); err != nil {
		return a.fail(op, err)
	}
	return nil
}

// Performance reads the campaign's lifetime metrics. Derived ratios the
// platform omits are computed from the raw counters.
func (a *RESTAdapter) Performance(ctx context.Context, platformCampaignID string, conn domain.PlatformConnection) (*domain.PerformanceSnapshot, error) {
	if err := a.checkObject(platformCampaignID, conn); err != nil {
		return nil, a.fail(port.OpPerformance, err)
	}

	target := a.profile.expand(a.profile.InsightsPath, conn.Credentials.AccountID, platformCampaignID, "", "")
	if a.profile.InsightsFields != "" {
		target += "?fields=" + url.QueryEscape(a.profile.InsightsFields)
	}
	body, _, err := a.do(ctx, http.MethodGet, target, conn.Credentials.AccessToken, nil)
	if err != nil {
		return nil, a.fail(port.OpPerformance, err)
	}

	row, err := decodeReport(body)
	if err != nil {
		return nil, a.fail(port.OpPerformance, fmt.Errorf("%w: decode report: %v", port.ErrRemoteRejected, err))
	}
	return row.snapshot(a.profile), nil
}

// ConnectAccount exchanges the authorization code and binds the first active
// ad account visible to the token.
func (a *RESTAdapter) ConnectAccount(ctx context.Context, authCode string, _ uuid.UUID) (*port.ConnectionResult, error) {
	p := a.profile.Platform
	if authCode == "" {
		return nil, fmt.Errorf("%w: %s: empty authorization code", port.ErrAuth, p)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.client)
	tok, err := a.oauth.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s token exchange: %v", port.ErrAuth, p, err)
	}

	body, _, err := a.do(ctx, http.MethodGet, a.profile.expand(a.profile.AccountsPath, "", "", "", ""), tok.AccessToken, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s list ad accounts: %w", port.ErrAuth, p, err)
	}
	var env accountsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %s decode ad accounts: %v", port.ErrAuth, p, err)
	}

	for _, acct := range env.accounts() {
		if acct.ID == "" || !a.profile.accountActive(acct) {
			continue
		}
		creds := domain.Credentials{
			AccessToken:  tok.AccessToken,
			RefreshToken: tok.RefreshToken,
			AccountID:    string(acct.ID),
		}
		if !tok.Expiry.IsZero() {
			creds.Expiry = tok.Expiry
		}
		return &port.ConnectionResult{Credentials: creds, AccountName: acct.Name}, nil
	}
	return nil, fmt.Errorf("%w: %s: %w", port.ErrAuth, p, port.ErrNoAdAccount)
}

// DisconnectAccount revokes the token on networks that expose a revocation
// endpoint. Elsewhere it is a no-op.
func (a *RESTAdapter) DisconnectAccount(ctx context.Context, conn domain.PlatformConnection) error {
	p := a.profile
	if p.RevokePath == "" || conn.Credentials.AccessToken == "" {
		return nil
	}

	method := p.RevokeMethod
	if method == "" {
		method = http.MethodDelete
	}
	target := p.expand(p.RevokePath, conn.Credentials.AccountID, "", "", "")
	token := conn.Credentials.AccessToken
	if p.RevokeTokenParam != "" {
		target += "?" + url.Values{p.RevokeTokenParam: {token}}.Encode()
		token = ""
	}
	if _, _, err := a.do(ctx, method, target, token, nil); err != nil {
		return a.fail(port.OpDisconnect, err)
	}
	return nil
}

func (a *RESTAdapter) precheck(c *domain.Campaign, conn domain.PlatformConnection) (*domain.PlatformSlot, error) {
	slot := c.Slot(a.profile.Platform)
	if slot == nil {
		return nil, port.ErrSlotNotFound
	}
	if !conn.Usable(a.now()) {
		return nil, port.ErrConnectionExpired
	}
	if conn.Credentials.AccountID == "" {
		return nil, port.ErrNoAdAccount
	}
	return slot, nil
}

func (a *RESTAdapter) checkObject(id string, conn domain.PlatformConnection) error {
	if id == "" {
		return fmt.Errorf("%w: empty platform campaign id", port.ErrRemoteRejected)
	}
	if !conn.Usable(a.now()) {
		return port.ErrConnectionExpired
	}
	return nil
}

func (a *RESTAdapter) fail(op port.Operation, err error) error {
	return port.NewPlatformError(a.profile.Platform, op, err)
}

func (a *RESTAdapter) campaignPayload(c *domain.Campaign, slot *domain.PlatformSlot) map[string]any {
	p := a.profile
	budget := slot.Budget.Allocated
	if budget.IsZero() {
		budget = c.Budget.Daily
	}

	body := map[string]any{
		"name":        c.Name,
		p.StatusField: p.ActiveStatus,
		p.BudgetField: p.NativeAmount(budget),
		"start_time":  p.FormatDate(c.StartDate),
	}
	if !c.EndDate.IsZero() {
		body["end_time"] = p.FormatDate(c.EndDate)
	}
	if p.AdGroupPath == "" && p.Targeting != nil {
		body["targeting"] = p.Targeting(c.TargetAudience)
	}
	for k, v := range p.CampaignExtra {
		body[k] = v
	}
	return body
}

func (a *RESTAdapter) adGroupPayload(c *domain.Campaign, slot *domain.PlatformSlot, campaignID string) map[string]any {
	p := a.profile
	body := map[string]any{
		"name":        c.Name + " - " + string(p.Platform),
		p.AdGroupRef:  campaignID,
		p.StatusField: p.ActiveStatus,
	}
	if p.Targeting != nil {
		body["targeting"] = p.Targeting(c.TargetAudience)
	}
	for k, v := range p.AdGroupExtra {
		body[k] = v
	}
	return body
}

func (a *RESTAdapter) adPayload(c *domain.Campaign, cr domain.Creative, i int, groupID string) map[string]any {
	p := a.profile
	title := cr.Title
	if title == "" {
		title = fmt.Sprintf("%s - ad %d", c.Name, i+1)
	}
	return map[string]any{
		"name":        title,
		p.AdRef:       groupID,
		p.StatusField: p.ActiveStatus,
		"creative": map[string]any{
			"type":           string(cr.Type),
			"title":          cr.Title,
			"body":           cr.Description,
			"media_url":      cr.MediaURL,
			"link_url":       cr.DestinationURL,
			"call_to_action": callToAction(cr.CallToAction),
		},
	}
}

type reportRow struct {
	Impressions       decimal.Decimal  `json:"impressions"`
	Clicks            decimal.Decimal  `json:"clicks"`
	Conversions       decimal.Decimal  `json:"conversions"`
	Spend             decimal.Decimal  `json:"spend"`
	CPC               *decimal.Decimal `json:"cpc"`
	CostPerConversion *decimal.Decimal `json:"cost_per_conversion"`
	CTR               *decimal.Decimal `json:"ctr"`
}

// decodeReport accepts a bare row, a {"data": row} object or a
// {"data": [row, ...]} list. An empty list yields a zero row.
func decodeReport(body []byte) (reportRow, error) {
	var row reportRow
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return row, err
	}

	data := bytes.TrimSpace(env.Data)
	switch {
	case len(data) > 0 && data[0] == '[':
		var rows []reportRow
		if err := json.Unmarshal(data, &rows); err != nil {
			return row, err
		}
		if len(rows) > 0 {
			row = rows[0]
		}
		return row, nil
	case len(data) > 0 && data[0] == '{':
		err := json.Unmarshal(data, &row)
		return row, err
	default:
		err := json.Unmarshal(body, &row)
		return row, err
	}
}

func (r reportRow) snapshot(p Profile) *domain.PerformanceSnapshot {
	spend := p.CurrencyAmount(r.Spend)
	snap := &domain.PerformanceSnapshot{
		Performance: domain.Performance{
			Impressions: r.Impressions.IntPart(),
			Clicks:      r.Clicks.IntPart(),
			Conversions: r.Conversions.IntPart(),
		},
		Spend: spend,
	}

	if r.CPC != nil {
		snap.CostPerClick = p.CurrencyAmount(*r.CPC)
	} else {
		snap.CostPerClick = costPer(spend, snap.Clicks)
	}
	if r.CostPerConversion != nil {
		snap.CostPerConversion = p.CurrencyAmount(*r.CostPerConversion)
	} else {
		snap.CostPerConversion = costPer(spend, snap.Conversions)
	}
	if r.CTR != nil {
		snap.CTR = r.CTR.Round(2).InexactFloat64()
	} else {
		snap.CTR = clickThrough(snap.Clicks, snap.Impressions)
	}
	return snap
}

func costPer(spend decimal.Decimal, n int64) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return spend.Div(decimal.NewFromInt(n)).Round(2)
}

// clickThrough is clicks per hundred impressions.
func clickThrough(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return decimal.NewFromInt(clicks).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(impressions)).
		Round(2).
		InexactFloat64()
}
