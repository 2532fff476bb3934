package xcidr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// 与 [net/netip] / [go4.org/netipx] 的互操作。块本身只建模连续的
// 前缀对齐区间；需要非连续集合运算（合并、求差）时应转换为
// [*netipx.IPSet] 在外部完成。

// Prefix 返回块的 [net/netip.Prefix] 形式。无效块返回零值。
func (r Range4) Prefix() netip.Prefix {
	if !r.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(r.Network(), r.b.prefix)
}

// Prefix 返回块的 [net/netip.Prefix] 形式。无效块返回零值。
func (r Range6) Prefix() netip.Prefix {
	if !r.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(r.Network(), r.b.prefix)
}

// IPRange 返回块覆盖的 [netipx.IPRange]。无效块返回零值。
func (r Range4) IPRange() netipx.IPRange {
	if !r.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.RangeOfPrefix(r.Prefix())
}

// IPRange 返回块覆盖的 [netipx.IPRange]。无效块返回零值。
func (r Range6) IPRange() netipx.IPRange {
	if !r.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.RangeOfPrefix(r.Prefix())
}

// RangeFromPrefix4 从 [net/netip.Prefix] 构造 IPv4 块。
// 主机位非零的前缀同样被归一化到网络边界。
func RangeFromPrefix4(p netip.Prefix) (Range4, error) {
	if !p.IsValid() {
		return Range4{}, fmt.Errorf("%w: zero netip.Prefix", ErrInvalidAddress)
	}
	return NewRange4(p.Addr(), p.Bits())
}

// RangeFromPrefix6 从 [net/netip.Prefix] 构造 IPv6 块。
// 主机位非零的前缀同样被归一化到网络边界。
func RangeFromPrefix6(p netip.Prefix) (Range6, error) {
	if !p.IsValid() {
		return Range6{}, fmt.Errorf("%w: zero netip.Prefix", ErrInvalidAddress)
	}
	return NewRange6(p.Addr(), p.Bits())
}
