package xcidr

import (
	"fmt"
	"iter"
	"math/big"
	"net/netip"
	"strconv"

	"github.com/omeyang/cidrkit/internal/uint128"
)

// maxSubnetShift 限制 128 位族单次切分的规模：前缀增量超过 63 位
// 意味着一次请求要产生超过 2^63 个子网，远超任何实际可迭代的数量，
// 直接拒绝而不是依赖调用方自觉 take/limit。
const maxSubnetShift = 63

// Range6 表示一个 IPv6 CIDR 块（128 位地址域）。
//
// 与 [Range4] 共享同一份算法体，仅位宽不同；值语义、零值无效、
// 相等与并发约定均与 [Range4] 一致。
//
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）按其 16 字节形式参与运算，
// 不做任何 Unmap 归一化。
type Range6 struct {
	b block[w128]
}

// ParseRange6 解析 "<address>/<prefixLength>" 形式的 IPv6 CIDR 字符串。
//
// 地址可以是块内任意主机地址，结果会归一化到网络边界。
// IPv4 地址返回 [ErrWrongFamily]；带 zone 的地址（fe80::1%eth0）
// 无法表示地址块，返回 [ErrInvalidAddress]。
func ParseRange6(s string) (Range6, error) {
	addr, prefix, err := parseCIDR(s)
	if err != nil {
		return Range6{}, err
	}
	return NewRange6(addr, prefix)
}

// TryParseRange6 是 [ParseRange6] 的非报错形式，批量校验不可信输入时
// 优先使用。解析失败时返回零值和 false。
func TryParseRange6(s string) (Range6, bool) {
	r, err := ParseRange6(s)
	return r, err == nil
}

// MustParseRange6 类似 [ParseRange6]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParseRange6(s string) Range6 {
	r, err := ParseRange6(s)
	if err != nil {
		panic(fmt.Sprintf("xcidr.MustParseRange6(%q): %v", s, err))
	}
	return r
}

// NewRange6 从地址和前缀长度构造 IPv6 块，地址被归一化到网络边界。
//
// 零值或带 zone 的地址返回 [ErrInvalidAddress]；IPv4 地址返回
// [ErrWrongFamily]；prefix 超出 [0, 128] 返回 [ErrPrefixOutOfRange]。
func NewRange6(addr netip.Addr, prefix int) (Range6, error) {
	if !addr.IsValid() {
		return Range6{}, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
	if addr.Zone() != "" {
		return Range6{}, fmt.Errorf("%w: IPv6 zone %q has no meaning for a CIDR block", ErrInvalidAddress, addr.Zone())
	}
	if !addr.Is6() {
		return Range6{}, fmt.Errorf("%w: expected IPv6, got %s", ErrWrongFamily, addr)
	}
	if prefix < 0 || prefix > 128 {
		return Range6{}, fmt.Errorf("%w: %d not in [0, 128]", ErrPrefixOutOfRange, prefix)
	}
	return Range6{b: makeBlock(w128FromAddr(addr), prefix)}, nil
}

// w128FromAddr 把 IPv6 地址转为 128 位网络字节序整数。zone 被丢弃。
func w128FromAddr(addr netip.Addr) w128 {
	return w128(uint128.From16(addr.As16()))
}

// addrFromW128 把 128 位整数转回 IPv6 地址。
func addrFromW128(v w128) netip.Addr {
	return netip.AddrFrom16(uint128.Uint128(v).As16())
}

// IsValid 报告 r 是否由构造函数产生。零值 Range6{} 返回 false。
func (r Range6) IsValid() bool {
	return r != Range6{}
}

// String 返回规范字符串形式 "<network>/<prefixLength>"，
// 网络地址使用 [net/netip] 的标准压缩冒号十六进制形式。
// 与 [ParseRange6] 的文法互为往返。无效块返回空字符串。
func (r Range6) String() string {
	if !r.IsValid() {
		return ""
	}
	return r.Network().String() + "/" + strconv.Itoa(r.b.prefix)
}

// PrefixLength 返回前缀长度，区间 [0, 128]。
func (r Range6) PrefixLength() int { return r.b.prefix }

// Network 返回网络地址（块内最低地址）。无效块返回零值。
func (r Range6) Network() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW128(r.b.network)
}

// Mask 返回前缀掩码的冒号十六进制形式。无效块返回零值。
func (r Range6) Mask() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW128(maskOf[w128](r.b.prefix))
}

// Last 返回块内最高地址。无效块返回零值。
func (r Range6) Last() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW128(r.b.last)
}

// FirstUsable 返回第一个可用地址（network+1）。
// /127 和 /128 返回网络地址本身。无效块返回零值。
func (r Range6) FirstUsable() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW128(r.b.firstUsable())
}

// LastUsable 返回最后一个可用地址（last-1）。
// /127 和 /128 返回最高地址本身。无效块返回零值。
func (r Range6) LastUsable() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW128(r.b.lastUsable())
}

// AddressCount 返回块内地址总数 2^(128-prefix)。无效块返回 nil。
func (r Range6) AddressCount() *big.Int {
	if !r.IsValid() {
		return nil
	}
	return r.b.addressCount()
}

// IsHost 报告块是否仅含单个地址（/128）。
func (r Range6) IsHost() bool {
	return r.IsValid() && r.b.isHost()
}

// Contains 报告 addr 是否落在块内（两端含）。
//
// 零值地址返回 [ErrInvalidAddress]；IPv4 地址返回 (false, nil)，
// 与 [Range4.Contains] 的跨地址族约定一致。带 zone 的地址按其
// 数值参与比较（zone 不影响成员关系）。零值块不包含任何地址。
func (r Range6) Contains(addr netip.Addr) (bool, error) {
	if !addr.IsValid() {
		return false, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
	if !r.IsValid() || !addr.Is6() {
		return false, nil
	}
	return r.b.contains(w128FromAddr(addr)), nil
}

// OverlapsWith 报告两个块的地址区间是否有交集。对称谓词。
func (r Range6) OverlapsWith(o Range6) bool {
	return r.IsValid() && o.IsValid() && r.b.overlaps(o.b)
}

// IsSubnetOf 报告 r 的地址区间是否完全落在 o 内。自反。
func (r Range6) IsSubnetOf(o Range6) bool {
	return r.IsValid() && o.IsValid() && r.b.subnetOf(o.b)
}

// IsSupernetOf 恒定义为 o.IsSubnetOf(r)。
func (r Range6) IsSupernetOf(o Range6) bool {
	return o.IsSubnetOf(r)
}

// Compare 定义全序：网络地址升序，相同时前缀长度升序。
func (r Range6) Compare(o Range6) int {
	return r.b.compare(o.b)
}

// Subnets 返回把块切分为 newPrefix 宽度子网的惰性序列。
//
// 除 [Range4.Subnets] 的方向与上界校验外，前缀增量超过 63 位的
// 请求（一次产生超过 2^63 个子网）同样返回 [ErrInvalidSubdivision]，
// 且在产生任何输出之前报告。
func (r Range6) Subnets(newPrefix int) (iter.Seq[Range6], error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: zero Range6", ErrInvalidSubdivision)
	}
	if newPrefix <= r.b.prefix || newPrefix > 128 {
		return nil, fmt.Errorf("%w: new prefix %d must be in (%d, 128]", ErrInvalidSubdivision, newPrefix, r.b.prefix)
	}
	if newPrefix-r.b.prefix > maxSubnetShift {
		return nil, fmt.Errorf("%w: splitting /%d into /%d would yield 2^%d subnets (limit 2^%d)",
			ErrInvalidSubdivision, r.b.prefix, newPrefix, newPrefix-r.b.prefix, maxSubnetShift)
	}
	inner := r.b.subnets(newPrefix)
	return func(yield func(Range6) bool) {
		for sb := range inner {
			if !yield(Range6{b: sb}) {
				return
			}
		}
	}, nil
}

// Supernet 返回把网络地址掩码到更短前缀后的包络块。
// newPrefix 必须在 [0, 当前前缀) 内，否则返回 [ErrInvalidSubdivision]。
func (r Range6) Supernet(newPrefix int) (Range6, error) {
	if !r.IsValid() {
		return Range6{}, fmt.Errorf("%w: zero Range6", ErrInvalidSubdivision)
	}
	if newPrefix < 0 || newPrefix >= r.b.prefix {
		return Range6{}, fmt.Errorf("%w: new prefix %d must be in [0, %d)", ErrInvalidSubdivision, newPrefix, r.b.prefix)
	}
	return Range6{b: r.b.supernet(newPrefix)}, nil
}
