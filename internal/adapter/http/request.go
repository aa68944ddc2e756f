package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

const maxBodySize = 1 << 20

type budgetRequest struct {
	Total decimal.Decimal `json:"total"`
	Daily decimal.Decimal `json:"daily"`
}

type slotRequest struct {
	Name      domain.Platform `json:"name" validate:"required"`
	Allocated decimal.Decimal `json:"allocated"`
}

type creativeRequest struct {
	Type           domain.CreativeType `json:"type" validate:"required,oneof=image video carousel text"`
	Title          string              `json:"title" validate:"max=255"`
	Description    string              `json:"description" validate:"max=2000"`
	MediaURL       string              `json:"mediaUrl" validate:"omitempty,url"`
	CallToAction   string              `json:"callToAction" validate:"max=64"`
	DestinationURL string              `json:"destinationUrl" validate:"omitempty,url"`
}

// campaignRequest is the body of POST /campaigns. Status, spend and slot
// state are server-owned and not accepted from the client.
type campaignRequest struct {
	Name           string            `json:"name" validate:"required,max=255"`
	Description    string            `json:"description" validate:"max=2000"`
	Budget         budgetRequest     `json:"budget"`
	StartDate      time.Time         `json:"startDate" validate:"required"`
	EndDate        time.Time         `json:"endDate"`
	TargetAudience *domain.Audience  `json:"targetAudience"`
	Platforms      []slotRequest     `json:"platforms" validate:"required,min=1,dive"`
	Creatives      []creativeRequest `json:"creatives" validate:"dive"`
}

func (req campaignRequest) toDomain() *domain.Campaign {
	c := &domain.Campaign{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Budget:      domain.Budget{Total: req.Budget.Total, Daily: req.Budget.Daily},
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Platforms:   toSlots(req.Platforms),
		Creatives:   toCreatives(req.Creatives),
	}
	if req.TargetAudience != nil {
		c.TargetAudience = *req.TargetAudience
	}
	return c
}

// campaignUpdateRequest is the body of PUT /campaigns/{id}. Omitted fields
// keep their stored value.
type campaignUpdateRequest struct {
	Name           *string           `json:"name" validate:"omitnil,min=1,max=255"`
	Description    *string           `json:"description" validate:"omitnil,max=2000"`
	Budget         *budgetRequest    `json:"budget"`
	StartDate      *time.Time        `json:"startDate"`
	EndDate        *time.Time        `json:"endDate"`
	TargetAudience *domain.Audience  `json:"targetAudience"`
	Platforms      []slotRequest     `json:"platforms" validate:"omitnil,min=1,dive"`
	Creatives      []creativeRequest `json:"creatives" validate:"omitnil,dive"`
}

func (req campaignUpdateRequest) toDomain() port.CampaignUpdate {
	upd := port.CampaignUpdate{
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TargetAudience: req.TargetAudience,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		upd.Name = &name
	}
	if req.Budget != nil {
		upd.Budget = &domain.Budget{Total: req.Budget.Total, Daily: req.Budget.Daily}
	}
	if req.Platforms != nil {
		upd.Platforms = toSlots(req.Platforms)
	}
	if req.Creatives != nil {
		upd.Creatives = toCreatives(req.Creatives)
	}
	return upd
}

func toSlots(in []slotRequest) []domain.PlatformSlot {
	out := make([]domain.PlatformSlot, 0, len(in))
	for _, s := range in {
		out = append(out, domain.PlatformSlot{
			Name:   domain.Platform(strings.ToLower(string(s.Name))),
			Budget: domain.SlotBudget{Allocated: s.Allocated},
		})
	}
	return out
}

func toCreatives(in []creativeRequest) []domain.Creative {
	out := make([]domain.Creative, 0, len(in))
	for _, cr := range in {
		out = append(out, domain.Creative(cr))
	}
	return out
}

type connectRequest struct {
	AuthCode string `json:"authCode" validate:"required"`
}

type leadStatusRequest struct {
	Status domain.LeadStatus `json:"status" validate:"required,oneof=new contacted qualified converted lost"`
}

type leadNotesRequest struct {
	Notes string `json:"notes" validate:"required,max=5000"`
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(fields, "; "))
		}
		return err
	}
	return nil
}

func campaignID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid campaign id")
	}
	return id, nil
}

func leadID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid lead id")
	}
	return id, nil
}

func platformParam(r *http.Request) domain.Platform {
	return domain.Platform(strings.ToLower(chi.URLParam(r, "platform")))
}
