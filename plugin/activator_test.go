package plugin

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/call/s3"
	"github.com/greenvulcano/gvesb-s3/operation"
)

type activatorTestSuite struct {
	suite.Suite
}

func (s *activatorTestSuite) TearDownTest() {
	operation.UnregisterAll()
}

func (s *activatorTestSuite) TestStartStop() {
	a := NewActivator(zerolog.Nop())

	s.Require().NoError(a.Start(context.Background()))
	s.Equal([]string{"s3-call"}, operation.RegisteredSuppliers())

	op, err := operation.NewOperation(s3.OperationType)
	s.Require().NoError(err)
	s.IsType(&s3.Call{}, op)

	other, err := operation.NewOperation(s3.OperationType)
	s.Require().NoError(err)
	s.NotSame(op, other, "each lookup gets a fresh instance")

	s.Require().NoError(a.Stop(context.Background()))
	s.Empty(operation.RegisteredSuppliers())
	_, err = operation.NewOperation(s3.OperationType)
	s.Require().ErrorIs(err, operation.ErrUnknownOperationType)
}

func (s *activatorTestSuite) TestSupplierAppliesOptions() {
	a := NewActivator(zerolog.Nop(), s3.WithLogger(zerolog.Nop()))
	s.Require().NoError(a.Start(context.Background()))

	op, err := operation.NewConfigured(s3.OperationType, "downloads", gvesb.Attributes{
		"akid":   "AKID",
		"skid":   "SKID",
		"region": "eu-west-1",
		"action": "get",
		"bucket": "b1",
	})
	s.Require().NoError(err)
	s.Equal(gvesb.OperationKey("downloads"), op.Key())
	s.Equal(s3.ActionGet, op.(*s3.Call).Action())
}

func (s *activatorTestSuite) TestRestart() {
	a := NewActivator(zerolog.Nop())
	s.Require().NoError(a.Start(context.Background()))
	s.Require().NoError(a.Stop(context.Background()))
	s.Require().NoError(a.Start(context.Background()))
	s.NotNil(operation.Lookup(s3.OperationType))
}

func TestActivator(t *testing.T) {
	suite.Run(t, new(activatorTestSuite))
}
