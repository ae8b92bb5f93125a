package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxengine/internal/gst"
	"taxengine/internal/money"
	"taxengine/internal/port"
)

func newTestLookup() *gst.HSNLookup {
	return gst.NewHSNLookup([]port.HSNEntry{
		{Code: "1006", Description: "Rice", GSTRate: money.Must("5")},
		{Code: "10063010", Description: "Basmati rice", GSTRate: money.Must("0"), ConditionDesc: "unbranded, loose"},
		{Code: "10063010", Description: "Basmati rice", GSTRate: money.Must("5")},
		{Code: "998314", Description: "IT consulting", GSTRate: money.Must("18")},
		{Code: " 8471 ", Description: "Computers", GSTRate: money.Must("18")},
	})
}

func TestHSNLookup_Rates(t *testing.T) {
	h := newTestLookup()
	assert.Equal(t, 4, h.Len())

	rates := h.Rates("10063010")
	require.Len(t, rates, 2)
	assert.Equal(t, "unbranded, loose", rates[0].ConditionDesc)

	t.Run("falls back to four digit prefix", func(t *testing.T) {
		rates := h.Rates("10061090")
		require.Len(t, rates, 1)
		assertDecimal(t, "5", rates[0].Rate)
	})

	t.Run("falls back to six digit prefix", func(t *testing.T) {
		rates := h.Rates("99831400")
		require.Len(t, rates, 1)
		assertDecimal(t, "18", rates[0].Rate)
	})

	t.Run("codes are trimmed on load", func(t *testing.T) {
		assert.True(t, h.Exists("8471"))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Nil(t, h.Rates("9999"))
		assert.False(t, h.Exists("9999"))
		assert.Nil(t, h.Rates(""))
	})
}

func TestHSNLookup_RateMatches(t *testing.T) {
	h := newTestLookup()

	matched, valid := h.RateMatches("10063010", money.Must("5"))
	assert.True(t, matched)
	assert.Len(t, valid, 2)

	matched, valid = h.RateMatches("998314", money.Must("12"))
	assert.False(t, matched)
	require.Len(t, valid, 1)
	assertDecimal(t, "18", valid[0].Rate)
}

func TestHSNLookup_SuggestRate(t *testing.T) {
	h := newTestLookup()

	rate, ok := h.SuggestRate("10063010")
	assert.True(t, ok)
	assertDecimal(t, "5", rate)

	_, ok = h.SuggestRate("0000")
	assert.False(t, ok)
}

func TestHSNLookup_NilAndEmpty(t *testing.T) {
	var h *gst.HSNLookup
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Exists("1006"))

	empty := gst.NewHSNLookup(nil)
	assert.Equal(t, 0, empty.Len())
	_, ok := empty.SuggestRate("1006")
	assert.False(t, ok)
}
