package teams

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
	// Key patterns: team:{id}, team:owner:{owner_id}
	teamKeyPrefix  = "team:"
	ownerKeyPrefix = "team:owner:"

	// Error messages
	errTeamNil      = "team cannot be nil"
	errTeamIDEmpty  = "team ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL applied on every write; zero keeps teams forever
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

// NewRedisRepository creates a new Redis-backed team repository
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
	if input.Team == nil {
		return nil, errors.InvalidArgument(errTeamNil)
	}
	if input.Team.ID == "" {
		return nil, errors.InvalidArgument(errTeamIDEmpty)
	}

	key := teamKeyPrefix + input.Team.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check team %s", input.Team.ID)
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("team %s already exists", input.Team.ID)
	}

	team := *input.Team
	now := r.clock.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := r.write(ctx, &team, ""); err != nil {
		return nil, errors.Wrapf(err, "failed to create team %s", team.ID)
	}

	slog.Debug("team created", "team_id", team.ID, "owner_id", team.OwnerID)

	return &CreateOutput{Team: &team}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTeamIDEmpty)
	}

	team, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Team: team}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Team == nil {
		return nil, errors.InvalidArgument(errTeamNil)
	}
	if input.Team.ID == "" {
		return nil, errors.InvalidArgument(errTeamIDEmpty)
	}

	existing, err := r.get(ctx, input.Team.ID)
	if err != nil {
		return nil, err
	}

	team := *input.Team
	team.CreatedAt = existing.CreatedAt
	team.UpdatedAt = r.clock.Now()

	if err := r.write(ctx, &team, existing.OwnerID); err != nil {
		return nil, errors.Wrapf(err, "failed to update team %s", team.ID)
	}

	return &UpdateOutput{Team: &team}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTeamIDEmpty)
	}

	existing, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, teamKeyPrefix+input.ID)
	if existing.OwnerID != "" {
		pipe.SRem(ctx, ownerKeyPrefix+existing.OwnerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete team %s", input.ID)
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
		return nil, errors.Wrapf(err, "failed to list teams for owner %s", input.OwnerID)
	}
	if len(ids) == 0 {
		return &ListByOwnerOutput{Teams: []*entities.StoredTeam{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = teamKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load teams for owner %s", input.OwnerID)
	}

	teams := make([]*entities.StoredTeam, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired by TTL; the index entry outlived it
			stale = append(stale, ids[i])
			continue
		}

		var team entities.StoredTeam
		if err := json.Unmarshal([]byte(raw), &team); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal team %s", ids[i])
		}
		teams = append(teams, &team)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, ownerKey, stale...).Err(); err != nil {
			slog.Warn("failed to prune team owner index",
				"owner_id", input.OwnerID,
				"error", err)
		}
	}

	sort.Slice(teams, func(i, j int) bool {
		if teams[i].CreatedAt.Equal(teams[j].CreatedAt) {
			return teams[i].ID < teams[j].ID
		}
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})

	return &ListByOwnerOutput{Teams: teams}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*entities.StoredTeam, error) {
	data, err := r.client.Get(ctx, teamKeyPrefix+id).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("team %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get team %s", id)
	}

	var team entities.StoredTeam
	if err := json.Unmarshal([]byte(data), &team); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal team %s", id)
	}

	return &team, nil
}

// write stores the team and moves it between owner indexes when the owner
// changed from previousOwner
func (r *redisRepository) write(ctx context.Context, team *entities.StoredTeam, previousOwner string) error {
	data, err := json.Marshal(team)
	if err != nil {
		return errors.Wrap(err, "failed to marshal team")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, teamKeyPrefix+team.ID, data, r.ttl)
	if previousOwner != "" && previousOwner != team.OwnerID {
		pipe.SRem(ctx, ownerKeyPrefix+previousOwner, team.ID)
	}
	if team.OwnerID != "" {
		pipe.SAdd(ctx, ownerKeyPrefix+team.OwnerID, team.ID)
	}

	_, err = pipe.Exec(ctx)
	return err
}
