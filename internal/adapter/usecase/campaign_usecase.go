package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CampaignUseCase orchestrates the campaign lifecycle across platforms. Each
// lifecycle call loads one campaign, dispatches to its eligible slots
// concurrently, folds every per-slot result into the campaign once all
// dispatches have settled and persists it once.
type CampaignUseCase struct {
	campaigns   port.CampaignRepository
	connections port.ConnectionRepository
	leads       port.LeadRepository
	dispatcher  port.Dispatcher

	log         *slog.Logger
	concurrency int
	now         func() time.Time
}

type Option func(*CampaignUseCase)

// WithConcurrency limits in-flight slot dispatches per lifecycle call.
func WithConcurrency(n int) Option {
	return func(u *CampaignUseCase) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.log = l }
}

func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	connections port.ConnectionRepository,
	leads port.LeadRepository,
	dispatcher port.Dispatcher,
	opts ...Option,
) *CampaignUseCase {
	u := &CampaignUseCase{
		campaigns:   campaigns,
		connections: connections,
		leads:       leads,
		dispatcher:  dispatcher,
		log:         slog.Default(),
		concurrency: 4,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create validates the campaign, applies defaults and stores it as a draft
// with every slot pending.
func (u *CampaignUseCase) Create(ctx context.Context, userID uuid.UUID, c *domain.Campaign) (*domain.Campaign, error) {
	if err := validateCampaign(c); err != nil {
		return nil, err
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.OwnerID = userID
	c.Status = domain.StatusDraft
	c.Budget.Spent = decimal.Zero
	applyAudienceDefaults(&c.TargetAudience)
	resetSlots(c)

	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.Int("platforms", len(c.Platforms)),
	)
	return c, nil
}

// Update replaces the given fields of a draft campaign and validates the
// result like Create does. Campaigns that have been launched are immutable.
func (u *CampaignUseCase) Update(ctx context.Context, userID, campaignID uuid.UUID, upd port.CampaignUpdate) (*domain.Campaign, error) {
	c, err := u.load(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: only draft campaigns can be edited, this one is %s", port.ErrInvalidTransition, c.Status)
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Budget != nil {
		c.Budget.Total = upd.Budget.Total
		c.Budget.Daily = upd.Budget.Daily
	}
	if upd.StartDate != nil {
		c.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		c.EndDate = *upd.EndDate
	}
	if upd.TargetAudience != nil {
		c.TargetAudience = *upd.TargetAudience
	}
	if upd.Platforms != nil {
		c.Platforms = upd.Platforms
	}
	if upd.Creatives != nil {
		c.Creatives = upd.Creatives
	}

	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	applyAudienceDefaults(&c.TargetAudience)
	resetSlots(c)

	if err := u.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "campaign updated", slog.String("campaign_id", c.ID.String()))
	return c, nil
}

func (u *CampaignUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	return u.campaigns.ListByOwner(ctx, userID)
}

func (u *CampaignUseCase) Get(ctx context.Context, userID, campaignID uuid.UUID) (*domain.Campaign, error) {
	return u.load(ctx, userID, campaignID)
}

// Delete removes a campaign that is not currently delivering.
func (u *CampaignUseCase) Delete(ctx context.Context, userID, campaignID uuid.UUID) error {
	c, err := u.load(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if c.Status == domain.StatusActive {
		return fmt.Errorf("%w: pause the campaign before deleting it", port.ErrInvalidTransition)
	}
	return u.campaigns.Delete(ctx, campaignID)
}

func (u *CampaignUseCase) Leads(ctx context.Context, userID, campaignID uuid.UUID) ([]domain.Lead, error) {
	if _, err := u.load(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	return u.leads.ListByCampaign(ctx, campaignID)
}

// Launch marks the campaign active and pushes every pending slot to its
// platform. Slots whose launch fails are marked failed.
func (u *CampaignUseCase) Launch(ctx context.Context, userID, campaignID uuid.UUID) (*port.LifecycleResult, error) {
	return u.run(ctx, userID, campaignID, port.OpLaunch)
}

// Pause marks the campaign paused and pauses every active slot. A slot whose
// pause fails stays active.
func (u *CampaignUseCase) Pause(ctx context.Context, userID, campaignID uuid.UUID) (*port.LifecycleResult, error) {
	return u.run(ctx, userID, campaignID, port.OpPause)
}

// Resume marks the campaign active and resumes every paused slot. A slot
// whose resume fails stays paused.
func (u *CampaignUseCase) Resume(ctx context.Context, userID, campaignID uuid.UUID) (*port.LifecycleResult, error) {
	return u.run(ctx, userID, campaignID, port.OpResume)
}

// Sync refreshes the performance of every live slot and recomputes the
// campaign spend from the slot budgets. The campaign status is unchanged.
func (u *CampaignUseCase) Sync(ctx context.Context, userID, campaignID uuid.UUID) (*port.LifecycleResult, error) {
	return u.run(ctx, userID, campaignID, port.OpPerformance)
}

// slotCall is the settled result of one dispatch.
type slotCall struct {
	index    int
	launch   *port.LaunchResult
	snapshot *domain.PerformanceSnapshot
	err      error
}

func (u *CampaignUseCase) run(ctx context.Context, userID, campaignID uuid.UUID, op port.Operation) (*port.LifecycleResult, error) {
	c, err := u.load(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if err := guard(c, op); err != nil {
		return nil, err
	}

	conns, err := u.connections.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}

	// Platform side effects are persisted even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	switch op {
	case port.OpLaunch, port.OpResume:
		c.Status = domain.StatusActive
	case port.OpPause:
		c.Status = domain.StatusPaused
	}

	calls := u.dispatch(ctx, c, op, eligible(c, op), conns)

	now := u.now()
	outcomes := make([]port.SlotOutcome, 0, len(calls))
	for _, call := range calls {
		outcomes = append(outcomes, u.apply(ctx, c, op, call, now))
	}
	if op == port.OpPerformance {
		c.RecomputeSpent()
	}

	if err := u.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}

	res := &port.LifecycleResult{Campaign: c, Outcomes: outcomes}
	u.log.InfoContext(ctx, "campaign lifecycle call",
		slog.String("campaign_id", c.ID.String()),
		slog.String("operation", string(op)),
		slog.Int("slots", len(outcomes)),
		slog.Int("failed", res.Failed()),
	)
	return res, nil
}

// dispatch calls the platform of every targeted slot, at most u.concurrency
// at a time. Each goroutine only writes its own element of the result and
// adapters see a copy of the campaign.
func (u *CampaignUseCase) dispatch(ctx context.Context, c *domain.Campaign, op port.Operation, targets []int, conns domain.Connections) []slotCall {
	calls := make([]slotCall, len(targets))

	// Adapters that outlive their timeout must not observe apply's writes.
	view := *c
	view.Platforms = slices.Clone(c.Platforms)

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, idx := range targets {
		slot := c.Platforms[idx]
		g.Go(func() error {
			call := slotCall{index: idx}
			switch op {
			case port.OpLaunch:
				call.launch, call.err = u.dispatcher.Launch(ctx, slot.Name, &view, conns)
				if call.err == nil && (call.launch == nil || call.launch.PlatformCampaignID == "") {
					call.err = port.NewPlatformError(slot.Name, op, fmt.Errorf("%w: no campaign id returned", port.ErrRemoteRejected))
				}
			case port.OpPause:
				call.err = u.dispatcher.Pause(ctx, slot.Name, slot.PlatformCampaignID, conns)
			case port.OpResume:
				call.err = u.dispatcher.Resume(ctx, slot.Name, slot.PlatformCampaignID, conns)
			case port.OpPerformance:
				call.snapshot, call.err = u.dispatcher.Performance(ctx, slot.Name, slot.PlatformCampaignID, conns)
				if call.err == nil && call.snapshot == nil {
					call.err = port.NewPlatformError(slot.Name, op, fmt.Errorf("%w: empty report", port.ErrRemoteRejected))
				}
			}
			calls[i] = call
			// Slot failures never cancel siblings.
			return nil
		})
	}
	_ = g.Wait()
	return calls
}

// apply folds one settled call into its slot.
func (u *CampaignUseCase) apply(ctx context.Context, c *domain.Campaign, op port.Operation, call slotCall, now time.Time) port.SlotOutcome {
	slot := &c.Platforms[call.index]

	switch {
	case op == port.OpLaunch && call.err == nil:
		slot.MarkLaunched(call.launch.PlatformCampaignID, now)
	case op == port.OpLaunch:
		slot.MarkLaunchFailed()
	case call.err != nil:
		// Pause, resume and sync failures leave the slot as it was.
	case op == port.OpPause:
		slot.MarkPaused(now)
	case op == port.OpResume:
		slot.MarkResumed(now)
	case op == port.OpPerformance:
		slot.ApplySnapshot(*call.snapshot, now)
	}

	out := port.SlotOutcome{Platform: slot.Name, Operation: op, Status: slot.Status}
	if call.err != nil {
		out.Error = call.err.Error()
		u.log.WarnContext(ctx, "platform call failed",
			slog.String("campaign_id", c.ID.String()),
			slog.String("platform", string(slot.Name)),
			slog.String("operation", string(op)),
			slog.String("error", call.err.Error()),
		)
	}
	return out
}

func (u *CampaignUseCase) load(ctx context.Context, userID, campaignID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrForbidden, campaignID)
	}
	return c, nil
}

func guard(c *domain.Campaign, op port.Operation) error {
	ok := true
	switch op {
	case port.OpLaunch:
		ok = c.CanLaunch()
	case port.OpPause:
		ok = c.CanPause()
	case port.OpResume:
		ok = c.CanResume()
	}
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s campaign", port.ErrInvalidTransition, op, c.Status)
	}
	return nil
}

// eligible returns the indexes of the slots op applies to.
func eligible(c *domain.Campaign, op port.Operation) []int {
	var idx []int
	for i, s := range c.Platforms {
		var ok bool
		switch op {
		case port.OpLaunch:
			ok = s.Status == domain.SlotPending
		case port.OpPause:
			ok = s.Status == domain.SlotActive
		case port.OpResume:
			ok = s.Status == domain.SlotPaused
		case port.OpPerformance:
			ok = s.Live()
		}
		if ok {
			idx = append(idx, i)
		}
	}
	return idx
}

func validateCampaign(c *domain.Campaign) error {
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is required")
	}
	if c.Budget.Total.IsNegative() || c.Budget.Daily.IsNegative() {
		problems = append(problems, "budget must not be negative")
	}
	if !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		problems = append(problems, "end date is before start date")
	}
	if a := c.TargetAudience.AgeRange; a.Min < 0 || a.Max < 0 {
		problems = append(problems, "age range must not be negative")
	} else if a.Min > a.Max {
		problems = append(problems, "age range minimum exceeds maximum")
	}
	if len(c.Platforms) == 0 {
		problems = append(problems, "at least one platform is required")
	}

	seen := make(map[domain.Platform]bool, len(c.Platforms))
	allocated := decimal.Zero
	for _, s := range c.Platforms {
		if !s.Name.IsValid() {
			return fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, s.Name)
		}
		if seen[s.Name] {
			problems = append(problems, fmt.Sprintf("platform %s listed twice", s.Name))
		}
		seen[s.Name] = true
		if s.Budget.Allocated.IsNegative() {
			problems = append(problems, fmt.Sprintf("%s allocation must not be negative", s.Name))
		}
		allocated = allocated.Add(s.Budget.Allocated)
	}
	if c.Budget.Total.IsPositive() && allocated.GreaterThan(c.Budget.Total) {
		problems = append(problems, "platform allocations exceed the total budget")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", port.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// resetSlots returns every slot to pending with no platform state.
func resetSlots(c *domain.Campaign) {
	for i := range c.Platforms {
		s := &c.Platforms[i]
		s.Status = domain.SlotPending
		s.PlatformCampaignID = ""
		s.Budget.Spent = decimal.Zero
		s.Performance = domain.Performance{}
		s.LastSynced = nil
	}
}

func applyAudienceDefaults(a *domain.Audience) {
	def := domain.DefaultAudience()
	if a.AgeRange.Min == 0 && a.AgeRange.Max == 0 {
		a.AgeRange = def.AgeRange
	}
	if len(a.Gender) == 0 {
		a.Gender = def.Gender
	}
}
