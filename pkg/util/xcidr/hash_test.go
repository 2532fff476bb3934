package xcidr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 散列与 == 一致：不同构造路径得到的相等块散列相同。
func TestHashConsistentWithEquality(t *testing.T) {
	a := MustParseRange4("10.0.0.5/24")
	b := MustParseRange4("10.0.0.0/24")
	c, err := NewRange4(netip.MustParseAddr("10.0.0.200"), 24)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), c.Hash())

	a6 := MustParseRange6("2001:db8::42/64")
	b6 := MustParseRange6("2001:db8::/64")
	assert.Equal(t, a6, b6)
	assert.Equal(t, a6.Hash(), b6.Hash())
}

func TestHashDiscriminates(t *testing.T) {
	// 不相等的块散列几乎必然不同；取几个代表性对比
	assert.NotEqual(t,
		MustParseRange4("10.0.0.0/24").Hash(),
		MustParseRange4("10.0.0.0/25").Hash())
	assert.NotEqual(t,
		MustParseRange4("10.0.0.0/24").Hash(),
		MustParseRange4("10.0.1.0/24").Hash())

	// 两个族的同构块（全零网络、prefix 0）不得撞到一起
	assert.NotEqual(t,
		MustParseRange4("0.0.0.0/0").Hash(),
		MustParseRange6("::/0").Hash())
}
