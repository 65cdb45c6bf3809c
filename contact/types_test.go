package contact_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cgrouting/contact"
)

type ContactSuite struct {
	suite.Suite
}

func TestContactSuite(t *testing.T) {
	suite.Run(t, new(ContactSuite))
}

func (s *ContactSuite) TestNewDerivesVolumeAndMAV() {
	c := contact.New(1, 2, 0, 10, 5)
	require.Equal(s.T(), int64(50), c.Volume)
	require.Equal(s.T(), [3]int64{50, 50, 50}, c.MAV)
	require.Equal(s.T(), 1.0, c.Confidence)
	require.Equal(s.T(), int64(1), c.OWLT)
}

func (s *ContactSuite) TestNewWithConfidenceOverrides() {
	c := contact.NewWithConfidence(1, 2, 0, 10, 5, 0.5, 3)
	require.Equal(s.T(), 0.5, c.Confidence)
	require.Equal(s.T(), int64(3), c.OWLT)
}

func (s *ContactSuite) TestClearDijkstraWorkingArea() {
	c := contact.New(1, 2, 0, 10, 5)
	c.ArrivalTime = 7
	c.Visited = true
	c.PredecessorIdx = 3
	c.VisitedNodes = map[contact.NodeId]struct{}{2: {}}

	c.ClearDijkstraWorkingArea()

	require.Equal(s.T(), contact.Infinity, c.ArrivalTime)
	require.False(s.T(), c.Visited)
	require.Equal(s.T(), -1, c.PredecessorIdx)
	require.Nil(s.T(), c.VisitedNodes)
}

func (s *ContactSuite) TestEqualIgnoresBookkeeping() {
	a := contact.New(1, 2, 0, 10, 5)
	b := contact.New(1, 2, 0, 10, 5)
	b.ArrivalTime = 42
	b.Visited = true

	require.True(s.T(), a.Equal(b))
}

func (s *ContactSuite) TestEqualDetectsFixedFieldDifference() {
	a := contact.New(1, 2, 0, 10, 5)
	b := contact.New(1, 2, 0, 11, 5)

	require.False(s.T(), a.Equal(b))
}

func (s *ContactSuite) TestIsReverseOf() {
	a := contact.New(1, 2, 0, 10, 5)
	b := contact.New(2, 1, 0, 10, 5)

	require.True(s.T(), a.IsReverseOf(b))
	require.True(s.T(), b.IsReverseOf(a))
	require.False(s.T(), a.IsReverseOf(a))
}

func (s *ContactSuite) TestMaxMAV() {
	c := contact.New(1, 2, 0, 10, 5)
	c.MAV = [3]int64{10, 30, 20}
	require.Equal(s.T(), int64(30), c.MaxMAV())
}

func (s *ContactSuite) TestVisitsNodeOnNilSet() {
	c := contact.New(1, 2, 0, 10, 5)
	require.False(s.T(), c.VisitsNode(2))
}

func (s *ContactSuite) TestIsSuppressedNextHop() {
	a := contact.New(1, 2, 0, 10, 5)
	b := contact.New(2, 3, 0, 10, 5)
	a.SuppressedNextHop = map[contact.Key]struct{}{contact.KeyOf(b): {}}

	require.True(s.T(), a.IsSuppressedNextHop(b))
	require.False(s.T(), a.IsSuppressedNextHop(contact.New(3, 4, 0, 10, 5)))
}
