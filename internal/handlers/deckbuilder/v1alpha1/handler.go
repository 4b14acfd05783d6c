// Package v1alpha1 handles the deck builder grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder"
)

// HandlerConfig holds dependencies for the deck builder handler
type HandlerConfig struct {
	Service deckbuilder.Service
	Catalog catalog.Catalog
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Handler implements DeckBuilderServiceServer
type Handler struct {
	service deckbuilder.Service
	catalog catalog.Catalog
}

var _ DeckBuilderServiceServer = (*Handler)(nil)

// NewHandler creates a new deck builder handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
		catalog: cfg.Catalog,
	}, nil
}

// CreateDeck creates an empty deck for an owner
func (h *Handler) CreateDeck(ctx context.Context, req *CreateDeckRequest) (*DeckResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.CreateDeck(ctx, &deckbuilder.CreateDeckInput{
		OwnerID: req.OwnerID,
		Name:    req.Name,
	})
	return deckResponse(out, err)
}

func (h *Handler) GetDeck(ctx context.Context, req *DeckRequest) (*DeckResponse, error) {
	out, err := h.service.GetDeck(ctx, &deckbuilder.GetDeckInput{DeckID: req.DeckID})
	return deckResponse(out, err)
}

// ListDecks returns every deck an owner has saved
func (h *Handler) ListDecks(ctx context.Context, req *ListDecksRequest) (*ListDecksResponse, error) {
	out, err := h.service.ListDecks(ctx, &deckbuilder.ListDecksInput{OwnerID: req.OwnerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListDecksResponse{Decks: make([]*DeckResponse, 0, len(out.Decks))}
	for _, d := range out.Decks {
		resp.Decks = append(resp.Decks, toDeckResponse(d))
	}
	return resp, nil
}

func (h *Handler) DeleteDeck(ctx context.Context, req *DeckRequest) (*DeleteResponse, error) {
	if _, err := h.service.DeleteDeck(ctx, &deckbuilder.DeleteDeckInput{DeckID: req.DeckID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteResponse{}, nil
}

func (h *Handler) RenameDeck(ctx context.Context, req *RenameDeckRequest) (*DeckResponse, error) {
	out, err := h.service.RenameDeck(ctx, &deckbuilder.RenameDeckInput{
		DeckID: req.DeckID,
		Name:   req.Name,
	})
	return deckResponse(out, err)
}

func (h *Handler) SetSpellcaster(ctx context.Context, req *SetSpellcasterRequest) (*DeckResponse, error) {
	out, err := h.service.SetSpellcaster(ctx, &deckbuilder.SetSpellcasterInput{
		DeckID:        req.DeckID,
		SpellcasterID: req.SpellcasterID,
	})
	return deckResponse(out, err)
}

func (h *Handler) RemoveSpellcaster(ctx context.Context, req *DeckRequest) (*DeckResponse, error) {
	out, err := h.service.RemoveSpellcaster(ctx, &deckbuilder.RemoveSpellcasterInput{DeckID: req.DeckID})
	return deckResponse(out, err)
}

func (h *Handler) SetSlot(ctx context.Context, req *SetSlotRequest) (*DeckResponse, error) {
	out, err := h.service.SetSlot(ctx, &deckbuilder.SetSlotInput{
		DeckID:    req.DeckID,
		SlotIndex: req.SlotIndex,
		EntityID:  req.EntityID,
	})
	return deckResponse(out, err)
}

func (h *Handler) ClearSlot(ctx context.Context, req *ClearSlotRequest) (*DeckResponse, error) {
	out, err := h.service.ClearSlot(ctx, &deckbuilder.ClearSlotInput{
		DeckID:    req.DeckID,
		SlotIndex: req.SlotIndex,
	})
	return deckResponse(out, err)
}

func (h *Handler) SwapSlots(ctx context.Context, req *SwapSlotsRequest) (*DeckResponse, error) {
	out, err := h.service.SwapSlots(ctx, &deckbuilder.SwapSlotsInput{
		DeckID: req.DeckID,
		IndexA: req.IndexA,
		IndexB: req.IndexB,
	})
	return deckResponse(out, err)
}

// QuickAdd places a catalog entity in the best slot of a deck
func (h *Handler) QuickAdd(ctx context.Context, req *QuickAddRequest) (*DeckResponse, error) {
	out, err := h.service.QuickAdd(ctx, &deckbuilder.QuickAddInput{
		DeckID:   req.DeckID,
		EntityID: req.EntityID,
	})
	return deckResponse(out, err)
}

func (h *Handler) ValidateDeck(ctx context.Context, req *DeckRequest) (*DeckResponse, error) {
	out, err := h.service.ValidateDeck(ctx, &deckbuilder.ValidateDeckInput{DeckID: req.DeckID})
	return deckResponse(out, err)
}

// AutoFillDeck fills the empty slots of a deck with random catalog cards
func (h *Handler) AutoFillDeck(ctx context.Context, req *DeckRequest) (*AutoFillDeckResponse, error) {
	out, err := h.service.AutoFillDeck(ctx, &deckbuilder.AutoFillDeckInput{DeckID: req.DeckID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AutoFillDeckResponse{
		DeckResponse: *toDeckResponse(&out.DeckOutput),
		Added:        out.Added,
	}, nil
}

// CreateTeam creates a team of three empty decks
func (h *Handler) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.CreateTeam(ctx, &deckbuilder.CreateTeamInput{
		OwnerID: req.OwnerID,
		Name:    req.Name,
	})
	return teamResponse(out, err)
}

func (h *Handler) GetTeam(ctx context.Context, req *TeamRequest) (*TeamResponse, error) {
	out, err := h.service.GetTeam(ctx, &deckbuilder.GetTeamInput{TeamID: req.TeamID})
	return teamResponse(out, err)
}

func (h *Handler) DeleteTeam(ctx context.Context, req *TeamRequest) (*DeleteResponse, error) {
	if _, err := h.service.DeleteTeam(ctx, &deckbuilder.DeleteTeamInput{TeamID: req.TeamID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteResponse{}, nil
}

func (h *Handler) TeamSetSlot(ctx context.Context, req *TeamSlotRequest) (*TeamResponse, error) {
	out, err := h.service.TeamSetSlot(ctx, &deckbuilder.TeamSetSlotInput{
		TeamID:    req.TeamID,
		DeckIndex: req.DeckIndex,
		SlotIndex: req.SlotIndex,
		EntityID:  req.EntityID,
	})
	return teamResponse(out, err)
}

func (h *Handler) TeamClearSlot(ctx context.Context, req *TeamSlotRequest) (*TeamResponse, error) {
	out, err := h.service.TeamClearSlot(ctx, &deckbuilder.TeamClearSlotInput{
		TeamID:    req.TeamID,
		DeckIndex: req.DeckIndex,
		SlotIndex: req.SlotIndex,
	})
	return teamResponse(out, err)
}

func (h *Handler) TeamSwapSlots(ctx context.Context, req *TeamSlotRequest) (*TeamResponse, error) {
	out, err := h.service.TeamSwapSlots(ctx, &deckbuilder.TeamSwapSlotsInput{
		TeamID:    req.TeamID,
		DeckIndex: req.DeckIndex,
		IndexA:    req.SlotIndex,
		IndexB:    req.IndexB,
	})
	return teamResponse(out, err)
}

func (h *Handler) TeamQuickAdd(ctx context.Context, req *TeamSlotRequest) (*TeamResponse, error) {
	out, err := h.service.TeamQuickAdd(ctx, &deckbuilder.TeamQuickAddInput{
		TeamID:    req.TeamID,
		DeckIndex: req.DeckIndex,
		EntityID:  req.EntityID,
	})
	return teamResponse(out, err)
}

func (h *Handler) TeamSetSpellcaster(ctx context.Context, req *TeamSpellcasterRequest) (*TeamResponse, error) {
	out, err := h.service.TeamSetSpellcaster(ctx, &deckbuilder.TeamSetSpellcasterInput{
		TeamID:        req.TeamID,
		DeckIndex:     req.DeckIndex,
		SpellcasterID: req.SpellcasterID,
	})
	return teamResponse(out, err)
}

func (h *Handler) TeamRemoveSpellcaster(ctx context.Context, req *TeamSpellcasterRequest) (*TeamResponse, error) {
	out, err := h.service.TeamRemoveSpellcaster(ctx, &deckbuilder.TeamRemoveSpellcasterInput{
		TeamID:    req.TeamID,
		DeckIndex: req.DeckIndex,
	})
	return teamResponse(out, err)
}

// MoveCardBetweenDecks moves a card from one team deck to another
func (h *Handler) MoveCardBetweenDecks(ctx context.Context, req *MoveCardRequest) (*TeamResponse, error) {
	out, err := h.service.MoveCardBetweenDecks(ctx, &deckbuilder.MoveCardBetweenDecksInput{
		TeamID:  req.TeamID,
		SrcDeck: req.SrcDeck,
		SrcSlot: req.SrcSlot,
		DstDeck: req.DstDeck,
		DstSlot: req.DstSlot,
	})
	return teamResponse(out, err)
}

func (h *Handler) MoveSpellcasterBetweenDecks(ctx context.Context, req *MoveSpellcasterRequest) (*TeamResponse, error) {
	out, err := h.service.MoveSpellcasterBetweenDecks(ctx, &deckbuilder.MoveSpellcasterBetweenDecksInput{
		TeamID:  req.TeamID,
		SrcDeck: req.SrcDeck,
		DstDeck: req.DstDeck,
	})
	return teamResponse(out, err)
}

func (h *Handler) ValidateTeam(ctx context.Context, req *TeamRequest) (*TeamResponse, error) {
	out, err := h.service.ValidateTeam(ctx, &deckbuilder.ValidateTeamInput{TeamID: req.TeamID})
	return teamResponse(out, err)
}

// HandleDrop applies a finished drag gesture to a team or a single deck
func (h *Handler) HandleDrop(ctx context.Context, req *HandleDropRequest) (*HandleDropResponse, error) {
	if req.TeamID == "" && req.DeckID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("team_id or deck_id is required"))
	}

	input := &deckbuilder.HandleDropInput{
		TeamID: req.TeamID,
		DeckID: req.DeckID,
		Active: deckbuilder.DragItem{
			Kind:            req.Active.Kind,
			EntityID:        req.Active.EntityID,
			SourceSlotIndex: req.Active.SourceSlotIndex,
			SourceDeckID:    req.Active.SourceDeckID,
		},
	}
	if req.Over != nil {
		input.Over = &dragroute.DropTarget{
			Kind:    req.Over.Kind,
			Index:   req.Over.Index,
			DeckID:  req.Over.DeckID,
			Accepts: req.Over.Accepts,
		}
	}

	out, err := h.service.HandleDrop(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &HandleDropResponse{
		Action:  toActionView(out.Action),
		Applied: out.Applied,
	}
	if out.Deck != nil {
		resp.Deck = toDeckResponse(out.Deck)
	}
	if out.Team != nil {
		resp.Team = toTeamResponse(out.Team)
	}
	return resp, nil
}

// ListCards lists catalog cards for the browser panel
func (h *Handler) ListCards(ctx context.Context, req *ListCardsRequest) (*ListCardsResponse, error) {
	cards, err := h.catalog.ListCards(ctx, catalog.ListCardsFilter{
		Category:     req.Category,
		NameContains: req.NameContains,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ListCardsResponse{Cards: cards}, nil
}

func (h *Handler) ListSpellcasters(ctx context.Context, _ *ListSpellcastersRequest) (*ListSpellcastersResponse, error) {
	spellcasters, err := h.catalog.ListSpellcasters(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ListSpellcastersResponse{Spellcasters: spellcasters}, nil
}
