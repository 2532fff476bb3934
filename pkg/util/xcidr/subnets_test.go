package xcidr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect4(t *testing.T, r Range4, newPrefix int) []Range4 {
	t.Helper()
	seq, err := r.Subnets(newPrefix)
	require.NoError(t, err)
	var out []Range4
	for s := range seq {
		out = append(out, s)
	}
	return out
}

func collect6(t *testing.T, r Range6, newPrefix int) []Range6 {
	t.Helper()
	seq, err := r.Subnets(newPrefix)
	require.NoError(t, err)
	var out []Range6
	for s := range seq {
		out = append(out, s)
	}
	return out
}

// 完整性与不相交性：/24 切 /26 恰好得到 4 个互不重叠的子网，
// 各自是原块的子网，地址数之和等于原块总数。
func TestSubnetsSplit24Into26(t *testing.T) {
	r := MustParseRange4("192.168.1.0/24")
	subs := collect4(t, r, 26)

	want := []string{
		"192.168.1.0/26",
		"192.168.1.64/26",
		"192.168.1.128/26",
		"192.168.1.192/26",
	}
	require.Len(t, subs, len(want))

	sum := new(big.Int)
	for i, s := range subs {
		assert.Equal(t, want[i], s.String())
		assert.True(t, s.IsSubnetOf(r))
		sum.Add(sum, s.AddressCount())
		for j, o := range subs {
			if i != j {
				assert.False(t, s.OverlapsWith(o), "%s overlaps %s", s, o)
			}
		}
	}
	assert.Equal(t, r.AddressCount(), sum)
}

func TestSubnetsSplitToHosts(t *testing.T) {
	r := MustParseRange4("10.0.0.0/30")
	subs := collect4(t, r, 32)

	require.Len(t, subs, 4)
	for _, s := range subs {
		assert.True(t, s.IsHost())
	}
	assert.Equal(t, "10.0.0.0/32", subs[0].String())
	assert.Equal(t, "10.0.0.3/32", subs[3].String())
}

// 地址空间顶端：最后一个子网的起点加 step 会回绕，
// 序列必须干净终止而不是吐出回绕后的脏值。
func TestSubnetsOverflowGuardTop(t *testing.T) {
	r := MustParseRange4("255.255.255.252/30")
	subs := collect4(t, r, 32)

	want := []string{
		"255.255.255.252/32",
		"255.255.255.253/32",
		"255.255.255.254/32",
		"255.255.255.255/32",
	}
	require.Len(t, subs, len(want))
	for i, s := range subs {
		assert.Equal(t, want[i], s.String())
	}

	// 整个地址空间切半也要在顶端收口
	all := collect4(t, MustParseRange4("0.0.0.0/0"), 1)
	require.Len(t, all, 2)
	assert.Equal(t, "0.0.0.0/1", all[0].String())
	assert.Equal(t, "128.0.0.0/1", all[1].String())
}

func TestSubnetsOverflowGuardTop6(t *testing.T) {
	r := MustParseRange6("ffff:ffff:ffff:ffff:ffff:ffff:ffff:fffc/126")
	subs := collect6(t, r, 128)

	require.Len(t, subs, 4)
	assert.Equal(t, "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff/128", subs[3].String())
}

func TestSubnetsSplit6(t *testing.T) {
	r := MustParseRange6("2001:db8::/32")
	subs := collect6(t, r, 34)

	want := []string{
		"2001:db8::/34",
		"2001:db8:4000::/34",
		"2001:db8:8000::/34",
		"2001:db8:c000::/34",
	}
	require.Len(t, subs, len(want))
	for i, s := range subs {
		assert.Equal(t, want[i], s.String())
		assert.True(t, s.IsSubnetOf(r))
	}
}

func TestSubnetsValidation(t *testing.T) {
	r := MustParseRange4("192.168.1.0/24")

	for _, bad := range []int{24, 8, -1, 33} {
		_, err := r.Subnets(bad)
		assert.ErrorIs(t, err, ErrInvalidSubdivision, "newPrefix=%d", bad)
	}

	var zero Range4
	_, err := zero.Subnets(8)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
}

// 128 位族的枚举上限：前缀增量超过 63 位在产生任何输出前拒绝。
func TestSubnets6DeltaCeiling(t *testing.T) {
	r := MustParseRange6("2001:db8::/32")

	_, err := r.Subnets(96) // 增量 64
	assert.ErrorIs(t, err, ErrInvalidSubdivision)

	seq, err := r.Subnets(95) // 增量 63，允许（惰性，不物化）
	require.NoError(t, err)
	// 只消费一个元素即停
	for s := range seq {
		assert.Equal(t, "2001:db8::/95", s.String())
		break
	}

	_, err = r.Subnets(20)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
	_, err = r.Subnets(129)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
}

// 序列可重放：同一请求再次 range 重现同一串子网。
func TestSubnetsRestartable(t *testing.T) {
	r := MustParseRange4("10.0.0.0/24")
	seq, err := r.Subnets(26)
	require.NoError(t, err)

	var first []Range4
	for s := range seq {
		first = append(first, s)
	}
	var second []Range4
	for s := range seq {
		second = append(second, s)
	}
	assert.Equal(t, first, second)

	// 中途退出后可以重新完整遍历
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	var third []Range4
	for s := range seq {
		third = append(third, s)
	}
	assert.Equal(t, first, third)
}

func TestSupernet(t *testing.T) {
	r := MustParseRange4("192.168.1.128/25")

	sup, err := r.Supernet(24)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", sup.String())
	assert.True(t, r.IsSubnetOf(sup))
	assert.True(t, sup.IsSupernetOf(r))

	sup, err = r.Supernet(0)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0/0", sup.String())

	for _, bad := range []int{25, 30, -1} {
		_, err := r.Supernet(bad)
		assert.ErrorIs(t, err, ErrInvalidSubdivision, "newPrefix=%d", bad)
	}
}

func TestSupernet6(t *testing.T) {
	r := MustParseRange6("2001:db8:1234::/48")

	sup, err := r.Supernet(32)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/32", sup.String())

	_, err = r.Supernet(48)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
	_, err = r.Supernet(-1)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)

	var zero Range6
	_, err = zero.Supernet(8)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
}

// 切分与包络互逆：任一子网的 Supernet 回到原块。
func TestSubnetsSupernetInverse(t *testing.T) {
	r := MustParseRange4("172.16.32.0/20")
	seq, err := r.Subnets(24)
	require.NoError(t, err)
	for s := range seq {
		back, err := s.Supernet(20)
		require.NoError(t, err)
		assert.Equal(t, r, back)
	}
}
