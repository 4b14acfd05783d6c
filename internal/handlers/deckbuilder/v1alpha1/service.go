package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "deckbuilder.v1alpha1.DeckBuilderService"

// DeckBuilderServiceServer is the server side of the deck builder service
type DeckBuilderServiceServer interface {
	CreateDeck(context.Context, *CreateDeckRequest) (*DeckResponse, error)
	GetDeck(context.Context, *DeckRequest) (*DeckResponse, error)
	ListDecks(context.Context, *ListDecksRequest) (*ListDecksResponse, error)
	DeleteDeck(context.Context, *DeckRequest) (*DeleteResponse, error)
	RenameDeck(context.Context, *RenameDeckRequest) (*DeckResponse, error)
	SetSpellcaster(context.Context, *SetSpellcasterRequest) (*DeckResponse, error)
	RemoveSpellcaster(context.Context, *DeckRequest) (*DeckResponse, error)
	SetSlot(context.Context, *SetSlotRequest) (*DeckResponse, error)
	ClearSlot(context.Context, *ClearSlotRequest) (*DeckResponse, error)
	SwapSlots(context.Context, *SwapSlotsRequest) (*DeckResponse, error)
	QuickAdd(context.Context, *QuickAddRequest) (*DeckResponse, error)
	ValidateDeck(context.Context, *DeckRequest) (*DeckResponse, error)
	AutoFillDeck(context.Context, *DeckRequest) (*AutoFillDeckResponse, error)

	CreateTeam(context.Context, *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(context.Context, *TeamRequest) (*TeamResponse, error)
	DeleteTeam(context.Context, *TeamRequest) (*DeleteResponse, error)
	TeamSetSlot(context.Context, *TeamSlotRequest) (*TeamResponse, error)
	TeamClearSlot(context.Context, *TeamSlotRequest) (*TeamResponse, error)
	TeamSwapSlots(context.Context, *TeamSlotRequest) (*TeamResponse, error)
	TeamQuickAdd(context.Context, *TeamSlotRequest) (*TeamResponse, error)
	TeamSetSpellcaster(context.Context, *TeamSpellcasterRequest) (*TeamResponse, error)
	TeamRemoveSpellcaster(context.Context, *TeamSpellcasterRequest) (*TeamResponse, error)
	MoveCardBetweenDecks(context.Context, *MoveCardRequest) (*TeamResponse, error)
	MoveSpellcasterBetweenDecks(context.Context, *MoveSpellcasterRequest) (*TeamResponse, error)
	ValidateTeam(context.Context, *TeamRequest) (*TeamResponse, error)

	HandleDrop(context.Context, *HandleDropRequest) (*HandleDropResponse, error)

	ListCards(context.Context, *ListCardsRequest) (*ListCardsResponse, error)
	ListSpellcasters(context.Context, *ListSpellcastersRequest) (*ListSpellcastersResponse, error)
}

// ServiceDesc describes the deck builder service for grpc.Server
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DeckBuilderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateDeck", DeckBuilderServiceServer.CreateDeck),
		unary("GetDeck", DeckBuilderServiceServer.GetDeck),
		unary("ListDecks", DeckBuilderServiceServer.ListDecks),
		unary("DeleteDeck", DeckBuilderServiceServer.DeleteDeck),
		unary("RenameDeck", DeckBuilderServiceServer.RenameDeck),
		unary("SetSpellcaster", DeckBuilderServiceServer.SetSpellcaster),
		unary("RemoveSpellcaster", DeckBuilderServiceServer.RemoveSpellcaster),
		unary("SetSlot", DeckBuilderServiceServer.SetSlot),
		unary("ClearSlot", DeckBuilderServiceServer.ClearSlot),
		unary("SwapSlots", DeckBuilderServiceServer.SwapSlots),
		unary("QuickAdd", DeckBuilderServiceServer.QuickAdd),
		unary("ValidateDeck", DeckBuilderServiceServer.ValidateDeck),
		unary("AutoFillDeck", DeckBuilderServiceServer.AutoFillDeck),
		unary("CreateTeam", DeckBuilderServiceServer.CreateTeam),
		unary("GetTeam", DeckBuilderServiceServer.GetTeam),
		unary("DeleteTeam", DeckBuilderServiceServer.DeleteTeam),
		unary("TeamSetSlot", DeckBuilderServiceServer.TeamSetSlot),
		unary("TeamClearSlot", DeckBuilderServiceServer.TeamClearSlot),
		unary("TeamSwapSlots", DeckBuilderServiceServer.TeamSwapSlots),
		unary("TeamQuickAdd", DeckBuilderServiceServer.TeamQuickAdd),
		unary("TeamSetSpellcaster", DeckBuilderServiceServer.TeamSetSpellcaster),
		unary("TeamRemoveSpellcaster", DeckBuilderServiceServer.TeamRemoveSpellcaster),
		unary("MoveCardBetweenDecks", DeckBuilderServiceServer.MoveCardBetweenDecks),
		unary("MoveSpellcasterBetweenDecks", DeckBuilderServiceServer.MoveSpellcasterBetweenDecks),
		unary("ValidateTeam", DeckBuilderServiceServer.ValidateTeam),
		unary("HandleDrop", DeckBuilderServiceServer.HandleDrop),
		unary("ListCards", DeckBuilderServiceServer.ListCards),
		unary("ListSpellcasters", DeckBuilderServiceServer.ListSpellcasters),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "deckbuilder/v1alpha1/deckbuilder.json",
}

// RegisterDeckBuilderServiceServer registers srv with s
func RegisterDeckBuilderServiceServer(s grpc.ServiceRegistrar, srv DeckBuilderServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the method descriptor protoc-gen-go-grpc would generate for a
// unary call, decoding into a fresh Req and running any interceptor.
func unary[Req, Resp any](method string, call func(DeckBuilderServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(DeckBuilderServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// DeckBuilderServiceClient calls the deck builder service. The connection
// must use the JSON codec, see ClientCodecOption.
type DeckBuilderServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDeckBuilderServiceClient wraps a client connection
func NewDeckBuilderServiceClient(cc grpc.ClientConnInterface) *DeckBuilderServiceClient {
	return &DeckBuilderServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DeckBuilderServiceClient) CreateDeck(ctx context.Context, in *CreateDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "CreateDeck", in, opts)
}

func (c *DeckBuilderServiceClient) GetDeck(ctx context.Context, in *DeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "GetDeck", in, opts)
}

func (c *DeckBuilderServiceClient) ListDecks(ctx context.Context, in *ListDecksRequest, opts ...grpc.CallOption) (*ListDecksResponse, error) {
	return invoke[ListDecksResponse](ctx, c.cc, "ListDecks", in, opts)
}

func (c *DeckBuilderServiceClient) DeleteDeck(ctx context.Context, in *DeckRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	return invoke[DeleteResponse](ctx, c.cc, "DeleteDeck", in, opts)
}

func (c *DeckBuilderServiceClient) RenameDeck(ctx context.Context, in *RenameDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "RenameDeck", in, opts)
}

func (c *DeckBuilderServiceClient) SetSpellcaster(ctx context.Context, in *SetSpellcasterRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "SetSpellcaster", in, opts)
}

func (c *DeckBuilderServiceClient) RemoveSpellcaster(ctx context.Context, in *DeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "RemoveSpellcaster", in, opts)
}

func (c *DeckBuilderServiceClient) SetSlot(ctx context.Context, in *SetSlotRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "SetSlot", in, opts)
}

func (c *DeckBuilderServiceClient) ClearSlot(ctx context.Context, in *ClearSlotRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "ClearSlot", in, opts)
}

func (c *DeckBuilderServiceClient) SwapSlots(ctx context.Context, in *SwapSlotsRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "SwapSlots", in, opts)
}

func (c *DeckBuilderServiceClient) QuickAdd(ctx context.Context, in *QuickAddRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "QuickAdd", in, opts)
}

func (c *DeckBuilderServiceClient) ValidateDeck(ctx context.Context, in *DeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, "ValidateDeck", in, opts)
}

func (c *DeckBuilderServiceClient) AutoFillDeck(ctx context.Context, in *DeckRequest, opts ...grpc.CallOption) (*AutoFillDeckResponse, error) {
	return invoke[AutoFillDeckResponse](ctx, c.cc, "AutoFillDeck", in, opts)
}

func (c *DeckBuilderServiceClient) CreateTeam(ctx context.Context, in *CreateTeamRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "CreateTeam", in, opts)
}

func (c *DeckBuilderServiceClient) GetTeam(ctx context.Context, in *TeamRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "GetTeam", in, opts)
}

func (c *DeckBuilderServiceClient) DeleteTeam(ctx context.Context, in *TeamRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	return invoke[DeleteResponse](ctx, c.cc, "DeleteTeam", in, opts)
}

func (c *DeckBuilderServiceClient) TeamSetSlot(ctx context.Context, in *TeamSlotRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "TeamSetSlot", in, opts)
}

func (c *DeckBuilderServiceClient) TeamClearSlot(ctx context.Context, in *TeamSlotRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "TeamClearSlot", in, opts)
}

func (c *DeckBuilderServiceClient) TeamSwapSlots(ctx context.Context, in *TeamSlotRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "TeamSwapSlots", in, opts)
}

func (c *DeckBuilderServiceClient) TeamQuickAdd(ctx context.Context, in *TeamSlotRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "TeamQuickAdd", in, opts)
}

func (c *DeckBuilderServiceClient) TeamSetSpellcaster(ctx context.Context, in *TeamSpellcasterRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "TeamSetSpellcaster", in, opts)
}

func (c *DeckBuilderServiceClient) TeamRemoveSpellcaster(ctx context.Context, in *TeamSpellcasterRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "TeamRemoveSpellcaster", in, opts)
}

func (c *DeckBuilderServiceClient) MoveCardBetweenDecks(ctx context.Context, in *MoveCardRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "MoveCardBetweenDecks", in, opts)
}

func (c *DeckBuilderServiceClient) MoveSpellcasterBetweenDecks(ctx context.Context, in *MoveSpellcasterRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "MoveSpellcasterBetweenDecks", in, opts)
}

func (c *DeckBuilderServiceClient) ValidateTeam(ctx context.Context, in *TeamRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, "ValidateTeam", in, opts)
}

func (c *DeckBuilderServiceClient) HandleDrop(ctx context.Context, in *HandleDropRequest, opts ...grpc.CallOption) (*HandleDropResponse, error) {
	return invoke[HandleDropResponse](ctx, c.cc, "HandleDrop", in, opts)
}

func (c *DeckBuilderServiceClient) ListCards(ctx context.Context, in *ListCardsRequest, opts ...grpc.CallOption) (*ListCardsResponse, error) {
	return invoke[ListCardsResponse](ctx, c.cc, "ListCards", in, opts)
}

func (c *DeckBuilderServiceClient) ListSpellcasters(ctx context.Context, in *ListSpellcastersRequest, opts ...grpc.CallOption) (*ListSpellcastersResponse, error) {
	return invoke[ListSpellcastersResponse](ctx, c.cc, "ListSpellcasters", in, opts)
}
