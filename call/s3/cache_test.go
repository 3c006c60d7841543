package s3

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3/call/s3/mocks"
)

type cacheTestSuite struct {
	suite.Suite
	built []Options
	fail  error
}

func (s *cacheTestSuite) SetupTest() {
	s.built = nil
	s.fail = nil
}

func (s *cacheTestSuite) factory(_ context.Context, opts Options) (Client, Presigner, error) {
	if s.fail != nil {
		return nil, nil, s.fail
	}
	s.built = append(s.built, opts)
	return mocks.NewClient(s.T()), mocks.NewPresigner(s.T()), nil
}

func (s *cacheTestSuite) TestGet() {
	cache := NewClientCache(s.factory)
	acme := Options{AccessKeyID: "a", SecretAccessKey: "s", Region: "eu-west-1"}
	globex := Options{AccessKeyID: "g", SecretAccessKey: "s", Region: "eu-west-1"}

	c1, p1, err := cache.Get(context.Background(), acme)
	s.Require().NoError(err)
	c2, p2, err := cache.Get(context.Background(), acme)
	s.Require().NoError(err)
	s.Same(c1, c2)
	s.Same(p1, p2)

	c3, _, err := cache.Get(context.Background(), globex)
	s.Require().NoError(err)
	s.NotSame(c1, c3, "different options get different clients")

	s.Equal([]Options{acme, globex}, s.built)
	s.Equal(2, cache.Len())
}

func (s *cacheTestSuite) TestFailuresNotCached() {
	cache := NewClientCache(s.factory)
	opts := Options{Region: "eu-west-1"}

	s.fail = errors.New("no credentials")
	_, _, err := cache.Get(context.Background(), opts)
	s.Require().ErrorIs(err, s.fail)
	s.Zero(cache.Len())

	s.fail = nil
	_, _, err = cache.Get(context.Background(), opts)
	s.Require().NoError(err)
	s.Equal(1, cache.Len())
}

func (s *cacheTestSuite) TestInvalidateAndPurge() {
	cache := NewClientCache(s.factory)
	a := Options{Region: "eu-west-1"}
	b := Options{Region: "us-east-1"}

	for _, o := range []Options{a, b} {
		_, _, err := cache.Get(context.Background(), o)
		s.Require().NoError(err)
	}
	s.Equal(2, cache.Len())

	cache.Invalidate(a)
	cache.Invalidate(Options{Region: "not-cached"})
	s.Equal(1, cache.Len())

	_, _, err := cache.Get(context.Background(), a)
	s.Require().NoError(err)
	s.Len(s.built, 3, "invalidated entries are rebuilt")

	cache.Purge()
	s.Zero(cache.Len())
}

func (s *cacheTestSuite) TestConcurrentGet() {
	cache := NewClientCache(s.factory)
	opts := Options{Region: "eu-west-1"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = cache.Get(context.Background(), opts)
		}()
	}
	wg.Wait()
	s.Len(s.built, 1, "a single client is built under contention")
}

func (s *cacheTestSuite) TestDefaultFactory() {
	s.NotNil(NewClientCache(nil).factory)
}

func TestClientCache(t *testing.T) {
	suite.Run(t, new(cacheTestSuite))
}
