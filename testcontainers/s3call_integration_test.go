//go:build integration

package testcontainers

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3/call/s3"
	"github.com/greenvulcano/gvesb-s3/plugin"
)

type s3callTestSuite struct {
	suite.Suite
	activator *plugin.Activator
	targets   []Target
}

func (s *s3callTestSuite) SetupSuite() {
	starters := []func(*testing.T) Target{
		startMinio,
		startLocalStack,
	}
	s.targets = make([]Target, len(starters))
	var wg sync.WaitGroup
	for i := range starters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.targets[i] = starters[i](s.T())
		}()
	}
	wg.Wait()

	s.activator = plugin.NewActivator(zerolog.Nop(), s3.WithLogger(zerolog.Nop()))
	s.Require().NoError(s.activator.Start(context.Background()))
}

func (s *s3callTestSuite) TearDownSuite() {
	s.Require().NoError(s.activator.Stop(context.Background()))
}

// TestTargets runs the conformance tests against each server
func (s *s3callTestSuite) TestTargets() {
	for _, target := range s.targets {
		s.Run(target.Name, func() {
			RunConformanceTests(s.T(), target)
		})
	}
}

func TestS3Call(t *testing.T) {
	suite.Run(t, new(s3callTestSuite))
}
