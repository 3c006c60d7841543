package gvesb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type messageTestSuite struct {
	suite.Suite
}

func (s *messageTestSuite) TestNewMessage() {
	msg := NewMessage("SVC", "SYS")
	s.Equal("SVC", msg.Service)
	s.Equal("SYS", msg.System)
	s.NotEqual(uuid.Nil, msg.ID, "a transaction id is assigned")
	s.Nil(msg.Payload)
	s.Empty(msg.PropertyNames())

	other := NewMessage("SVC", "SYS")
	s.NotEqual(msg.ID, other.ID, "transaction ids are unique")
}

func (s *messageTestSuite) TestProperties() {
	msg := NewMessage("SVC", "SYS")

	_, ok := msg.Property("S3_FILE_NAME")
	s.False(ok, "unset property")

	msg.SetProperty("S3_FILE_NAME", "a.txt")
	msg.SetProperty("S3_PREFIX", "")
	v, ok := msg.Property("S3_FILE_NAME")
	s.True(ok)
	s.Equal("a.txt", v)

	v, ok = msg.Property("S3_PREFIX")
	s.True(ok, "empty values are still set")
	s.Empty(v)

	msg.SetProperty("S3_FILE_NAME", "b.txt")
	v, _ = msg.Property("S3_FILE_NAME")
	s.Equal("b.txt", v, "SetProperty replaces")

	s.Equal([]string{"S3_FILE_NAME", "S3_PREFIX"}, msg.PropertyNames())

	msg.RemoveProperty("S3_PREFIX")
	msg.RemoveProperty("NOT_SET")
	s.Equal([]string{"S3_FILE_NAME"}, msg.PropertyNames())
}

func (s *messageTestSuite) TestZeroValueMessage() {
	var msg Message
	_, ok := msg.Property("X")
	s.False(ok)
	msg.SetProperty("X", "1")
	v, ok := msg.Property("X")
	s.True(ok)
	s.Equal("1", v)
}

func (s *messageTestSuite) TestAttributes() {
	var node Node = Attributes{"bucket": "b1", "region": ""}

	v, ok := node.Attribute("bucket")
	s.True(ok)
	s.Equal("b1", v)

	_, ok = node.Attribute("region")
	s.True(ok, "present but empty")

	_, ok = node.Attribute("akid")
	s.False(ok)
}

func TestMessage(t *testing.T) {
	suite.Run(t, new(messageTestSuite))
}
