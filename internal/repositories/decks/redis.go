package decks

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/deckbuilder-api/internal/redis"
)

const (
	// Key patterns: deck:{id}, deck:owner:{owner_id}
	deckKeyPrefix  = "deck:"
	ownerKeyPrefix = "deck:owner:"

	// Error messages
	errDeckNil      = "deck cannot be nil"
	errDeckIDEmpty  = "deck ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL applied on every write; zero keeps decks forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed deck repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Deck == nil {
		return nil, errors.InvalidArgument(errDeckNil)
	}
	if input.Deck.ID == "" {
		return nil, errors.InvalidArgument(errDeckIDEmpty)
	}

	key := deckKeyPrefix + input.Deck.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check deck %s", input.Deck.ID)
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("deck %s already exists", input.Deck.ID)
	}

	deck := *input.Deck
	now := r.clock.Now()
	deck.CreatedAt = now
	deck.UpdatedAt = now

	if err := r.write(ctx, &deck, ""); err != nil {
		return nil, errors.Wrapf(err, "failed to create deck %s", deck.ID)
	}

	slog.Debug("deck created", "deck_id", deck.ID, "owner_id", deck.OwnerID)

	return &CreateOutput{Deck: &deck}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDeckIDEmpty)
	}

	deck, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Deck: deck}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Deck == nil {
		return nil, errors.InvalidArgument(errDeckNil)
	}
	if input.Deck.ID == "" {
		return nil, errors.InvalidArgument(errDeckIDEmpty)
	}

	existing, err := r.get(ctx, input.Deck.ID)
	if err != nil {
		return nil, err
	}

	deck := *input.Deck
	deck.CreatedAt = existing.CreatedAt
	deck.UpdatedAt = r.clock.Now()

	if err := r.write(ctx, &deck, existing.OwnerID); err != nil {
		return nil, errors.Wrapf(err, "failed to update deck %s", deck.ID)
	}

	return &UpdateOutput{Deck: &deck}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDeckIDEmpty)
	}

	existing, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, deckKeyPrefix+input.ID)
	if existing.OwnerID != "" {
		pipe.SRem(ctx, ownerKeyPrefix+existing.OwnerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete deck %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ownerKey := ownerKeyPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, ownerKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list decks for owner %s", input.OwnerID)
	}
	if len(ids) == 0 {
		return &ListByOwnerOutput{Decks: []*entities.StoredDeck{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = deckKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load decks for owner %s", input.OwnerID)
	}

	decks := make([]*entities.StoredDeck, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired by TTL; the index entry outlived it
			stale = append(stale, ids[i])
			continue
		}

		var deck entities.StoredDeck
		if err := json.Unmarshal([]byte(raw), &deck); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal deck %s", ids[i])
		}
		decks = append(decks, &deck)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, ownerKey, stale...).Err(); err != nil {
			slog.Warn("failed to prune deck owner index",
				"owner_id", input.OwnerID,
				"error", err)
		}
	}

	sort.Slice(decks, func(i, j int) bool {
		if decks[i].CreatedAt.Equal(decks[j].CreatedAt) {
			return decks[i].ID < decks[j].ID
		}
		return decks[i].CreatedAt.Before(decks[j].CreatedAt)
	})

	return &ListByOwnerOutput{Decks: decks}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*entities.StoredDeck, error) {
	data, err := r.client.Get(ctx, deckKeyPrefix+id).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("deck %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get deck %s", id)
	}

	var deck entities.StoredDeck
	if err := json.Unmarshal([]byte(data), &deck); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal deck %s", id)
	}

	return &deck, nil
}

// write stores the deck and moves it between owner indexes when the owner
// changed from previousOwner
func (r *redisRepository) write(ctx context.Context, deck *entities.StoredDeck, previousOwner string) error {
	data, err := json.Marshal(deck)
	if err != nil {
		return errors.Wrap(err, "failed to marshal deck")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, deckKeyPrefix+deck.ID, data, r.ttl)
	if previousOwner != "" && previousOwner != deck.OwnerID {
		pipe.SRem(ctx, ownerKeyPrefix+previousOwner, deck.ID)
	}
	if deck.OwnerID != "" {
		pipe.SAdd(ctx, ownerKeyPrefix+deck.OwnerID, deck.ID)
	}

	_, err = pipe.Exec(ctx)
	return err
}
