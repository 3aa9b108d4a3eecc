package bindings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
)

const (
	setKeyPrefix = "binding_set:"
	indexKey     = "binding_sets"
)

// Data is the stored form of a binding set
type Data struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Bindings  []BindingData `json:"bindings"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BindingData is the stored form of a binding entry
type BindingData struct {
	Input   string `json:"input"`
	Ability string `json:"ability"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewTimeProvider()
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: tp,
	}
}

func setKey(id string) string {
	return setKeyPrefix + id
}

func (r *redisRepo) Create(ctx context.Context, set *entities.BindingSet) error {
	if err := set.Validate(); err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeInvalidArgument, "invalid binding set")
	}

	exists, err := r.client.Exists(ctx, setKey(set.ID)).Result()
	if err != nil {
		return dispatcherr.Wrap(err, "failed to check binding set")
	}
	if exists > 0 {
		return dispatcherr.AlreadyExistsf("binding set %s already exists", set.ID)
	}

	now := r.timeProvider.Now()
	set.CreatedAt = now
	set.UpdatedAt = now

	return r.write(ctx, set)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.BindingSet, error) {
	if id == "" {
		return nil, dispatcherr.InvalidArgument("binding set ID is required")
	}

	raw, err := r.client.Get(ctx, setKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dispatcherr.NotFoundf("binding set %s not found", id)
		}
		return nil, dispatcherr.Wrap(err, "failed to get binding set from Redis")
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, dispatcherr.WrapWithCode(err, dispatcherr.CodeInternal, "failed to unmarshal binding set")
	}

	return toBindingSet(&data), nil
}

func (r *redisRepo) Update(ctx context.Context, set *entities.BindingSet) error {
	if err := set.Validate(); err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeInvalidArgument, "invalid binding set")
	}

	existing, err := r.Get(ctx, set.ID)
	if err != nil {
		return err
	}

	set.CreatedAt = existing.CreatedAt
	set.UpdatedAt = r.timeProvider.Now()

	return r.write(ctx, set)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, setKey(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dispatcherr.Wrap(err, "failed to delete binding set from Redis")
	}

	if del.Val() == 0 {
		return dispatcherr.NotFoundf("binding set %s not found", id)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.BindingSet, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, dispatcherr.Wrap(err, "failed to list binding sets from Redis")
	}

	sets := make([]*entities.BindingSet, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			set, err := r.Get(gctx, id)
			if err != nil {
				// Stale index entry
				if dispatcherr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get binding set %s: %w", id, err)
			}
			sets[i] = set
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*entities.BindingSet, 0, len(sets))
	for _, set := range sets {
		if set != nil {
			out = append(out, set)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *redisRepo) write(ctx context.Context, set *entities.BindingSet) error {
	raw, err := json.Marshal(toData(set))
	if err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeInternal, "failed to marshal binding set")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, setKey(set.ID), string(raw), 0)
	pipe.SAdd(ctx, indexKey, set.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dispatcherr.Wrap(err, "failed to store binding set in Redis")
	}

	return nil
}

func toData(set *entities.BindingSet) *Data {
	if set == nil {
		return nil
	}

	data := &Data{
		ID:        set.ID,
		Name:      set.Name,
		Bindings:  make([]BindingData, len(set.Bindings)),
		CreatedAt: set.CreatedAt,
		UpdatedAt: set.UpdatedAt,
	}
	for i, b := range set.Bindings {
		data.Bindings[i] = BindingData{
			Input:   string(b.Input),
			Ability: string(b.Ability),
		}
	}
	return data
}

func toBindingSet(data *Data) *entities.BindingSet {
	if data == nil {
		return nil
	}

	set := &entities.BindingSet{
		ID:        data.ID,
		Name:      data.Name,
		Bindings:  make([]entities.BindingEntry, len(data.Bindings)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for i, b := range data.Bindings {
		set.Bindings[i] = entities.BindingEntry{
			Input:   entities.InputID(b.Input),
			Ability: entities.AbilityID(b.Ability),
		}
	}
	return set
}
