package s3

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3"
)

type actionTestSuite struct {
	suite.Suite
}

func (s *actionTestSuite) TestParseAction() {
	for a, name := range actionNames {
		parsed, err := ParseAction(name)
		s.Require().NoError(err)
		s.Equal(a, parsed)
		s.Equal(name, a.String())
	}

	_, err := ParseAction("Put")
	s.Require().ErrorIs(err, ErrUnknownAction)
	_, err = ParseAction("")
	s.Require().ErrorIs(err, ErrUnknownAction)

	s.Equal("Action(0)", Action(0).String())
}

func (s *actionTestSuite) TestOptionalProperty() {
	msg := gvesb.NewMessage("SVC", "SYS")
	s.Equal("/", optionalProperty(msg, PropDelimiter, "/"), "absent")

	msg.SetProperty(PropDelimiter, "NULL")
	s.Equal("/", optionalProperty(msg, PropDelimiter, "/"), "NULL sentinel")

	msg.SetProperty(PropDelimiter, "")
	s.Equal("", optionalProperty(msg, PropDelimiter, "/"), "empty is a value")

	msg.SetProperty(PropDelimiter, "|")
	s.Equal("|", optionalProperty(msg, PropDelimiter, "/"))
}

func (s *actionTestSuite) TestRequiredProperty() {
	msg := gvesb.NewMessage("SVC", "SYS")
	_, err := requiredProperty(msg, PropFileName)
	s.Require().ErrorIs(err, gvesb.ErrMissingProperty)
	s.Equal("S3_FILE_NAME: missing required message property", err.Error())

	msg.SetProperty(PropFileName, "")
	_, err = requiredProperty(msg, PropFileName)
	s.Require().ErrorIs(err, gvesb.ErrMissingProperty)

	msg.SetProperty(PropFileName, "a.txt")
	v, err := requiredProperty(msg, PropFileName)
	s.Require().NoError(err)
	s.Equal("a.txt", v)
}

func (s *actionTestSuite) TestLinkExpiration() {
	tests := []struct {
		value string
		want  time.Duration
		fails bool
	}{
		{value: "1", want: time.Millisecond},
		{value: "90000", want: 90 * time.Second},
		{value: " 3600000 ", want: time.Hour},
		{value: "0", fails: true},
		{value: "-1", fails: true},
		{value: "ten", fails: true},
		{value: "9223372036854775807", fails: true},
	}
	for _, tc := range tests {
		s.Run(tc.value, func() {
			msg := gvesb.NewMessage("SVC", "SYS")
			msg.SetProperty(PropLinkExpiration, tc.value)
			got, err := linkExpiration(msg)
			if tc.fails {
				s.Require().ErrorIs(err, ErrInvalidExpiration)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *actionTestSuite) TestPayloadBytes() {
	b, err := payloadBytes([]byte("raw"))
	s.Require().NoError(err)
	s.Equal([]byte("raw"), b)

	b, err = payloadBytes("text")
	s.Require().NoError(err)
	s.Equal([]byte("text"), b)

	_, err = payloadBytes(nil)
	s.Require().ErrorIs(err, gvesb.ErrUnsupportedPayload)

	_, err = payloadBytes(map[string]string{})
	s.Require().ErrorIs(err, gvesb.ErrUnsupportedPayload)
}

func (s *actionTestSuite) TestCopySource() {
	s.Equal("b1/a.txt", copySource("b1", "a.txt"))
	s.Equal("b1/dir%2Fsub%2Fa+b.txt", copySource("b1", "dir/sub/a+b.txt"))
	s.Equal("b1/caf%C3%A9.txt", copySource("b1", "café.txt"))
}

func (s *actionTestSuite) TestNewActionForEveryAction() {
	for a := range actionNames {
		act, err := newAction(a, Config{})
		s.Require().NoError(err)
		s.NotNil(act)
	}
	_, err := newAction(Action(99), Config{})
	s.Require().ErrorIs(err, ErrUnknownAction)
}

func TestAction(t *testing.T) {
	suite.Run(t, new(actionTestSuite))
}
