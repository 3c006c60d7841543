package utils_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type errorsSuite struct {
	suite.Suite
}

// TestErrorWrapFunctions tests all error wrap functions with both nil and non-nil errors
func (s *errorsSuite) TestErrorWrapFunctions() {
	testError := errors.New("test error")

	testCases := []struct {
		name        string
		wrapFunc    func(error) error
		expectedMsg string
	}{
		{"WrapListError", utils.WrapListError, "list error: test error"},
		{"WrapPutError", utils.WrapPutError, "put error: test error"},
		{"WrapGetError", utils.WrapGetError, "get error: test error"},
		{"WrapDeleteError", utils.WrapDeleteError, "delete error: test error"},
		{"WrapCopyError", utils.WrapCopyError, "copy error: test error"},
		{"WrapLinkError", utils.WrapLinkError, "link error: test error"},
		{"WrapClientError", utils.WrapClientError, "client error: test error"},
	}

	for _, tc := range testCases {
		s.Run(tc.name+"_WithError", func() {
			err := tc.wrapFunc(testError)
			s.Require().EqualError(err, tc.expectedMsg, "error message should be properly wrapped")
			s.Require().ErrorIs(err, testError, "should be able to unwrap to original error")
		})

		s.Run(tc.name+"_WithNil", func() {
			s.Require().NoError(tc.wrapFunc(nil), "should return nil when given a nil error")
		})
	}
}

func (s *errorsSuite) TestWrapExpandError() {
	testError := errors.New("test error")
	err := utils.WrapExpandError("bucket", testError)
	s.Require().EqualError(err, "expand bucket error: test error")
	s.Require().ErrorIs(err, testError)
	s.Require().NoError(utils.WrapExpandError("bucket", nil))
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(errorsSuite))
}
