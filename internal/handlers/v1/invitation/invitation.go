package invitation

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// InvitationCode is the API response model for an invitation code.
type InvitationCode struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	CreatedBy string   `json:"createdBy" doc:"UUID of the issuing administrator"`
	UsesLeft  int      `json:"usesLeft"`
	ExpiresAt *string  `json:"expiresAt" format:"date-time" doc:"Null when the code never expires"`
	UsedBy    []string `json:"usedBy" doc:"UUIDs of users registered with the code"`
	CreatedAt string   `json:"createdAt" format:"date-time"`
}

func fromService(c service.InvitationCode) InvitationCode {
	out := InvitationCode{
		ID:        c.ID.String(),
		Code:      c.Code,
		CreatedBy: c.CreatedBy.String(),
		UsesLeft:  c.UsesLeft,
		UsedBy:    make([]string, len(c.UsedBy)),
		CreatedAt: handlers.FormatTime(c.CreatedAt),
	}
	if c.ExpiresAt != nil {
		expiresAt := handlers.FormatTime(*c.ExpiresAt)
		out.ExpiresAt = &expiresAt
	}
	for i, id := range c.UsedBy {
		out.UsedBy[i] = id.String()
	}
	return out
}

type invitationService interface {
	CreateInvitationCode(ctx context.Context, p service.Principal, usesLeft *int, expiresAt *time.Time) (*service.InvitationCode, error)
	ListInvitationCodes(ctx context.Context, p service.Principal) ([]service.InvitationCode, error)
}

type CreateInvitationBody struct {
	UsesLeft  *int    `json:"usesLeft,omitempty" doc:"Number of registrations allowed, 1 to 1000, default 1"`
	ExpiresAt *string `json:"expiresAt,omitempty" doc:"RFC3339 expiry, must be in the future"`
}

type CreateInvitationInput struct {
	Body CreateInvitationBody
}

type InvitationOutput struct {
	Body InvitationCode
}

type ListInvitationsOutput struct {
	Body struct {
		InvitationCodes []InvitationCode `json:"invitationCodes"`
	}
}

// Handler serves /v1/invitation-codes.
type Handler struct {
	InvitationService invitationService
}

func NewHandler(svc invitationService) *Handler {
	return &Handler{InvitationService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-invitation-codes",
		Method:      http.MethodGet,
		Path:        "/v1/invitation-codes",
		Summary:     "List invitation codes",
		Tags:        []string{"Invitation codes"},
		Security:    auth.Security(),
		Metadata:    auth.AdministratorOnly(),
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "create-invitation-code",
		Method:        http.MethodPost,
		Path:          "/v1/invitation-codes",
		Summary:       "Create invitation code",
		Tags:          []string{"Invitation codes"},
		Security:      auth.Security(),
		Metadata:      auth.AdministratorOnly(),
		DefaultStatus: http.StatusCreated,
	}, h.create)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListInvitationsOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	codes, err := h.InvitationService.ListInvitationCodes(ctx, p)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	out := &ListInvitationsOutput{}
	out.Body.InvitationCodes = make([]InvitationCode, len(codes))
	for i, c := range codes {
		out.Body.InvitationCodes[i] = fromService(c)
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateInvitationInput) (*InvitationOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if input.Body.ExpiresAt != nil {
		t, err := time.Parse(time.RFC3339, *input.Body.ExpiresAt)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid expiresAt", err)
		}
		expiresAt = &t
	}

	code, err := h.InvitationService.CreateInvitationCode(ctx, p, input.Body.UsesLeft, expiresAt)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &InvitationOutput{Body: fromService(*code)}, nil
}
