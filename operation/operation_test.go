package operation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/mocks"
)

type testSuite struct {
	suite.Suite
}

func (s *testSuite) TearDownTest() {
	UnregisterAll()
}

func (s *testSuite) TestRegistry() {
	built := 0
	supplier := func() gvesb.CallOperation {
		built++
		return mocks.NewCallOperation(s.T())
	}
	RegisterSupplier("mock", supplier)
	RegisterSupplier("new mock", supplier)
	RegisterSupplier("newest mock", supplier)

	s.Equal([]string{"mock", "new mock", "newest mock"}, RegisteredSuppliers())
	s.NotNil(Lookup("new mock"))
	s.Nil(Lookup("nope"))

	op1, err := NewOperation("mock")
	s.Require().NoError(err)
	op2, err := NewOperation("mock")
	s.Require().NoError(err)
	s.NotSame(op1, op2, "every call builds a new instance")
	s.Equal(2, built)

	UnregisterSupplier("newest mock")
	s.Len(RegisteredSuppliers(), 2, "found 2 suppliers")

	UnregisterAll()
	s.Empty(RegisteredSuppliers(), "found 0 suppliers")
}

func (s *testSuite) TestNewOperationUnknown() {
	op, err := NewOperation("s3-call")
	s.Require().ErrorIs(err, ErrUnknownOperationType)
	s.Nil(op)
}

func (s *testSuite) TestNewConfigured() {
	node := gvesb.Attributes{"action": "get"}
	op := mocks.NewCallOperation(s.T())
	op.On("SetKey", gvesb.OperationKey("key-1")).Return().Once()
	op.On("Init", node).Return(nil).Once()
	RegisterSupplier("mock", func() gvesb.CallOperation { return op })

	got, err := NewConfigured("mock", "key-1", node)
	s.Require().NoError(err)
	s.Same(op, got)
}

func (s *testSuite) TestNewConfiguredInitFailure() {
	initErr := gvesb.NewInitializationError(errors.New("bad"))
	op := mocks.NewCallOperation(s.T())
	op.On("SetKey", mock.Anything).Return().Once()
	op.On("Init", mock.Anything).Return(initErr).Once()
	RegisterSupplier("mock", func() gvesb.CallOperation { return op })

	got, err := NewConfigured("mock", "key-1", gvesb.Attributes{})
	s.Require().ErrorIs(err, initErr)
	s.Nil(got)

	_, err = NewConfigured("missing", "key-1", gvesb.Attributes{})
	s.Require().ErrorIs(err, ErrUnknownOperationType)
}

func TestOperation(t *testing.T) {
	suite.Run(t, new(testSuite))
}
