package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	ctx context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TestConfigValidation() {
	testCases := []struct {
		name   string
		config *redis.Config
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "redis config cannot be nil"},
		{name: "missing addr", config: &redis.Config{}, errMsg: "Addr: is required"},
		{name: "negative timeout", config: &redis.Config{Addr: "localhost:6379", IOTimeout: -time.Second}, errMsg: "IOTimeout: must not be negative"},
		{name: "negative retries", config: &redis.Config{Addr: "localhost:6379", MaxRetries: -1}, errMsg: "MaxRetries: must not be negative"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.NewClient(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(client)
		})
	}
}

func (s *ClientTestSuite) TestConnect() {
	client, err := redis.Connect(s.ctx, &redis.Config{Addr: s.mr.Addr(), DialTimeout: time.Second})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Require().NoError(client.Set(s.ctx, "dex:probe", "ok", 0).Err())
	got, err := client.Get(s.ctx, "dex:probe").Result()
	s.Require().NoError(err)
	s.Equal("ok", got)
}

func (s *ClientTestSuite) TestConnectUnreachable() {
	addr := s.mr.Addr()
	s.mr.Close()

	client, err := redis.Connect(s.ctx, &redis.Config{Addr: addr, DialTimeout: 200 * time.Millisecond})
	s.Require().Error(err)
	s.Nil(client)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Contains(err.Error(), "is unreachable")
}
