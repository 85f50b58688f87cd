package redis_test

import (
	"context"
	"testing"
	"time"

	redis_adapter "catering/internal/adapters/out/redis"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type IdempotencyStoreIntegrationTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	rdb       *redis.Client
	store     *redis_adapter.IdempotencyStore
}

func (suite *IdempotencyStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(uri)
	suite.Require().NoError(err)
	suite.rdb = redis.NewClient(opts)
	suite.store = redis_adapter.NewIdempotencyStore(suite.rdb, time.Minute)
}

func (suite *IdempotencyStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
}

func (suite *IdempotencyStoreIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.Require().NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestReserve_OnlyFirstCallerWins() {
	ctx := context.Background()

	first, err := suite.store.Reserve(ctx, "key-1")
	suite.Require().NoError(err)
	suite.True(first)

	second, err := suite.store.Reserve(ctx, "key-1")
	suite.Require().NoError(err)
	suite.False(second)

	other, err := suite.store.Reserve(ctx, "key-2")
	suite.Require().NoError(err)
	suite.True(other)
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestLoad_PendingUntilSaved() {
	ctx := context.Background()

	_, done, err := suite.store.Load(ctx, "key-1")
	suite.Require().NoError(err)
	suite.False(done, "unknown key")

	_, err = suite.store.Reserve(ctx, "key-1")
	suite.Require().NoError(err)
	_, done, err = suite.store.Load(ctx, "key-1")
	suite.Require().NoError(err)
	suite.False(done, "reserved key")

	suite.Require().NoError(suite.store.Save(ctx, "key-1", []byte(`{"status":201}`)))
	payload, done, err := suite.store.Load(ctx, "key-1")
	suite.Require().NoError(err)
	suite.True(done)
	suite.JSONEq(`{"status":201}`, string(payload))
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestRelease_AllowsNewReservation() {
	ctx := context.Background()

	_, err := suite.store.Reserve(ctx, "key-1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Release(ctx, "key-1"))

	again, err := suite.store.Reserve(ctx, "key-1")
	suite.Require().NoError(err)
	suite.True(again)
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestKeysExpire() {
	ctx := context.Background()

	_, err := suite.store.Reserve(ctx, "key-1")
	suite.Require().NoError(err)

	ttl, err := suite.rdb.TTL(ctx, "idem:payments:key-1").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Minute)
}

func TestIdempotencyStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyStoreIntegrationTestSuite))
}
