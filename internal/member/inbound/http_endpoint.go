package inbound

import (
	"github.com/shandysiswandi/roster/internal/member/usecase"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
	"github.com/shandysiswandi/roster/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for member registration and lookup.
type HTTPEndpoint struct {
	uc uc
}

// Register validates and stores a new member. A successful registration
// returns an empty 200 response.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// MemberList returns every registered member ordered by name.
func (h *HTTPEndpoint) MemberList(r *router.Request) (any, error) {
	resp, err := h.uc.MemberList(r.Context())
	if err != nil {
		return nil, err
	}

	members := make([]MemberResponse, 0, len(resp.Members))
	for _, m := range resp.Members {
		members = append(members, MemberResponse{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
			Phone: m.Phone,
		})
	}

	return members, nil
}

// MemberDetail returns a single member by id.
func (h *HTTPEndpoint) MemberDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		// The route only serves numeric ids; anything else has no member.
		return nil, goerror.NewBusiness("member not found", goerror.CodeNotFound)
	}

	resp, err := h.uc.MemberDetail(r.Context(), usecase.MemberDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return MemberResponse{
		ID:    resp.Member.ID,
		Name:  resp.Member.Name,
		Email: resp.Member.Email,
		Phone: resp.Member.Phone,
	}, nil
}
