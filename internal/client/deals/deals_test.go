package deals

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posts(seekKg, carryKg float64) (*models.SeekerPost, *models.CarrierPost) {
	s := &models.SeekerPost{ID: "s1", UserID: "alice", From: "Dubai", To: "London", Date: "2025-06-01", Kg: seekKg}
	c := &models.CarrierPost{ID: "c1", UserID: "bob", From: "Dubai", To: "London", Date: "2025-06-01", Kg: carryKg}
	return s, c
}

func TestPropose_UsesSmallerWeight(t *testing.T) {
	tests := []struct {
		seek, carry, want float64
	}{
		{10, 15, 10},
		{15, 10, 10},
		{7.5, 7.5, 7.5},
		{0, 20, 0},
	}
	for _, tt := range tests {
		s, c := posts(tt.seek, tt.carry)
		d, err := Propose("d1", s, c)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.Kg)
		assert.Equal(t, tt.want*40, d.Total)
	}
}

func TestPropose_InitialState(t *testing.T) {
	s, c := posts(10, 15)
	d, err := Propose("d1", s, c)
	require.NoError(t, err)

	assert.Equal(t, "alice", d.SeekerID)
	assert.Equal(t, "bob", d.CarrierID)
	assert.Equal(t, models.StatusProposed, d.Status)
	assert.Equal(t, 0, d.TimelineIdx)
	assert.NotNil(t, d.Chat)
	assert.Empty(t, d.Chat)
	assert.Equal(t, 400.0, d.Total)
}

func TestPropose_Errors(t *testing.T) {
	s, c := posts(1, 1)
	_, err := Propose("", s, c)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = Propose("d", nil, c)
	require.ErrorIs(t, err, common.ErrNoMatchingPost)
}

func TestAdvance_ClampsAtReleased(t *testing.T) {
	s, c := posts(10, 15)
	d, err := Propose("d1", s, c)
	require.NoError(t, err)

	want := []models.Status{
		models.StatusAccepted,
		models.StatusInTransit,
		models.StatusDelivered,
		models.StatusReleased,
	}
	for i, st := range want {
		require.True(t, Advance(d))
		assert.Equal(t, st, d.Status)
		assert.Equal(t, i+1, d.TimelineIdx)
		assert.True(t, d.Consistent())
	}

	assert.False(t, Advance(d))
	assert.Equal(t, models.StatusReleased, d.Status)
	assert.Equal(t, 4, d.TimelineIdx)
	assert.Equal(t, 10.0, d.Kg)
	assert.Equal(t, 400.0, d.Total)
}

func TestAccept(t *testing.T) {
	s, c := posts(10, 15)
	d, err := Propose("d1", s, c)
	require.NoError(t, err)

	require.NoError(t, Accept(d))
	assert.Equal(t, models.StatusAccepted, d.Status)
	assert.Equal(t, 1, d.TimelineIdx)

	err = Accept(d)
	require.ErrorIs(t, err, common.ErrNotProposed)
	assert.Equal(t, models.StatusAccepted, d.Status)
	assert.Equal(t, 1, d.TimelineIdx)

	Advance(d)
	before := *d
	require.ErrorIs(t, Accept(d), common.ErrNotProposed)
	assert.Equal(t, before.Status, d.Status)
	assert.Equal(t, before.TimelineIdx, d.TimelineIdx)
}

func TestAcceptAndAdvanceReachSameStep(t *testing.T) {
	s, c := posts(1, 1)
	a, _ := Propose("a", s, c)
	b, _ := Propose("b", s, c)

	require.NoError(t, Accept(a))
	Advance(b)
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, a.TimelineIdx, b.TimelineIdx)
}

func TestSendMessage(t *testing.T) {
	d := &models.Deal{ID: "d1", Chat: []models.ChatMessage{}}
	now := time.UnixMilli(1717200000000)

	for _, blank := range []string{"", "   ", "\n\t"} {
		m, ok := SendMessage(d, "m0", "alice", blank, now)
		assert.False(t, ok)
		assert.Nil(t, m)
	}
	assert.Len(t, d.Chat, 0)

	m1, ok := SendMessage(d, "m1", "alice", "  hello ", now)
	require.True(t, ok)
	assert.Equal(t, "hello", m1.Text)
	assert.Equal(t, int64(1717200000000), m1.TS)

	_, ok = SendMessage(d, "m2", "bob", "hi there", now.Add(time.Second))
	require.True(t, ok)
	_, ok = SendMessage(d, "m3", "alice", "see you", now.Add(2*time.Second))
	require.True(t, ok)

	ids := []string{}
	for _, m := range d.Chat {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids)
	assert.Equal(t, "bob", d.Chat[1].UserID)
}

func TestAdminRevenue(t *testing.T) {
	all := []models.Deal{{Kg: 10}, {Kg: 2.5}, {Kg: 0}}
	assert.True(t, decimal.NewFromFloat(237.5).Equal(AdminRevenue(all)))
	assert.True(t, AdminRevenue(nil).IsZero())
}
