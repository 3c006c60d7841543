package options

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type target struct {
	applied []string
}

type nameOpt struct {
	name string
}

func (o *nameOpt) Apply(t *target) {
	t.applied = append(t.applied, o.name)
}

func (o *nameOpt) NewCallOptionName() string {
	return o.name
}

type optionsTestSuite struct {
	suite.Suite
}

func (s *optionsTestSuite) TestApplyOptions() {
	t := &target{}
	ApplyOptions[target](t, &nameOpt{"first"}, nil, &nameOpt{"second"})
	s.Equal([]string{"first", "second"}, t.applied, "options applied in order, nil skipped")

	ApplyOptions[target](t)
	s.Len(t.applied, 2, "no options is a no-op")
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(optionsTestSuite))
}
