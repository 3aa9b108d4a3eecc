package bindings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
	s.now = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func heroSet() *entities.BindingSet {
	return &entities.BindingSet{
		ID:   "hero",
		Name: "Hero abilities",
		Bindings: []entities.BindingEntry{
			{Input: "move_forward", Ability: "ability.dash"},
			{Input: "jump", Ability: "ability.jump"},
		},
	}
}

func (s *RedisRepoTestSuite) encoded(set *entities.BindingSet) string {
	raw, err := json.Marshal(toData(set))
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	set := heroSet()

	expected := heroSet()
	expected.CreatedAt = s.now
	expected.UpdatedAt = s.now

	// Happy path
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectExists("binding_set:hero").SetVal(0)
	s.mock.ExpectSet("binding_set:hero", s.encoded(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("binding_sets", "hero").SetVal(1)

	s.NoError(s.repo.Create(ctx, set))
	s.Equal(s.now, set.CreatedAt)
	s.Equal(s.now, set.UpdatedAt)

	// Already exists
	s.mock.ExpectExists("binding_set:hero").SetVal(1)

	err := s.repo.Create(ctx, heroSet())
	s.True(dispatcherr.IsAlreadyExists(err))

	// Dependency error
	s.mock.ExpectExists("binding_set:hero").SetErr(errors.New("redis error"))

	err = s.repo.Create(ctx, heroSet())
	s.Error(err)

	// Input validation
	err = s.repo.Create(ctx, &entities.BindingSet{ID: ""})
	s.True(dispatcherr.IsInvalidArgument(err))

	err = s.repo.Create(ctx, nil)
	s.True(dispatcherr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	stored := heroSet()
	stored.CreatedAt = s.now
	stored.UpdatedAt = s.now

	// Happy path
	s.mock.ExpectGet("binding_set:hero").SetVal(s.encoded(stored))

	got, err := s.repo.Get(ctx, "hero")
	s.Require().NoError(err)
	s.Equal(stored, got)

	// Missing
	s.mock.ExpectGet("binding_set:ghost").RedisNil()

	_, err = s.repo.Get(ctx, "ghost")
	s.True(dispatcherr.IsNotFound(err))

	// Corrupt payload
	s.mock.ExpectGet("binding_set:hero").SetVal("{not json")

	_, err = s.repo.Get(ctx, "hero")
	s.True(dispatcherr.IsInternal(err))

	// Dependency error
	s.mock.ExpectGet("binding_set:hero").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "hero")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.True(dispatcherr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	created := s.now.Add(-time.Hour)

	stored := heroSet()
	stored.CreatedAt = created
	stored.UpdatedAt = created

	update := heroSet()
	update.Bindings = append(update.Bindings, entities.BindingEntry{Input: "crouch", Ability: "ability.slide"})

	expected := update.Clone()
	expected.CreatedAt = created
	expected.UpdatedAt = s.now

	s.mock.ExpectGet("binding_set:hero").SetVal(s.encoded(stored))
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSet("binding_set:hero", s.encoded(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("binding_sets", "hero").SetVal(0)

	s.NoError(s.repo.Update(ctx, update))
	s.Equal(created, update.CreatedAt)
	s.Equal(s.now, update.UpdatedAt)

	// Missing
	s.mock.ExpectGet("binding_set:hero").RedisNil()

	err := s.repo.Update(ctx, heroSet())
	s.True(dispatcherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("binding_set:hero").SetVal(1)
	s.mock.ExpectSRem("binding_sets", "hero").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "hero"))

	// Missing
	s.mock.ExpectDel("binding_set:ghost").SetVal(0)
	s.mock.ExpectSRem("binding_sets", "ghost").SetVal(0)

	err := s.repo.Delete(ctx, "ghost")
	s.True(dispatcherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()

	hero := heroSet()
	hero.CreatedAt = s.now
	hero.UpdatedAt = s.now

	mage := &entities.BindingSet{
		ID:        "mage",
		Name:      "Mage abilities",
		Bindings:  []entities.BindingEntry{{Input: "cast", Ability: "ability.fireball"}},
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}

	// Gets run concurrently
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("binding_sets").SetVal([]string{"mage", "hero", "stale"})
	s.mock.ExpectGet("binding_set:mage").SetVal(s.encoded(mage))
	s.mock.ExpectGet("binding_set:hero").SetVal(s.encoded(hero))
	s.mock.ExpectGet("binding_set:stale").RedisNil()

	sets, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(sets, 2)
	s.Equal("hero", sets[0].ID)
	s.Equal("mage", sets[1].ID)
}

func (s *RedisRepoTestSuite) TestListIndexError() {
	s.mock.ExpectSMembers("binding_sets").SetErr(errors.New("redis error"))

	_, err := s.repo.List(context.Background())
	s.Error(err)
}
