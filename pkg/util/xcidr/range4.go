package xcidr

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math/big"
	"net/netip"
	"strconv"
)

// Range4 表示一个 IPv4 CIDR 块（32 位地址域）。
//
// 不可变值类型：
//   - 零值表示无效块，[Range4.IsValid] 返回 false
//   - 可直接比较（==）和用作 map key；相等当且仅当网络地址与前缀长度相等
//   - 并发安全，无需加锁
//
// 使用 [ParseRange4]、[NewRange4] 或 [MustParseRange4] 创建有效块；
// 构造是唯一的校验入口，构造成功后所有字段恒为合法值。
type Range4 struct {
	b block[w32]
}

// ParseRange4 解析 "<address>/<prefixLength>" 形式的 IPv4 CIDR 字符串。
//
// 地址可以是块内任意主机地址，结果会归一化到网络边界：
// "10.0.0.5/24" 与 "10.0.0.0/24" 解析为相等的值。
// IPv6 地址（含 IPv4-mapped 形式）返回 [ErrWrongFamily]。
func ParseRange4(s string) (Range4, error) {
	addr, prefix, err := parseCIDR(s)
	if err != nil {
		return Range4{}, err
	}
	return NewRange4(addr, prefix)
}

// TryParseRange4 是 [ParseRange4] 的非报错形式，批量校验不可信输入时
// 优先使用。解析失败时返回零值和 false。
func TryParseRange4(s string) (Range4, bool) {
	r, err := ParseRange4(s)
	return r, err == nil
}

// MustParseRange4 类似 [ParseRange4]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParseRange4(s string) Range4 {
	r, err := ParseRange4(s)
	if err != nil {
		panic(fmt.Sprintf("xcidr.MustParseRange4(%q): %v", s, err))
	}
	return r
}

// NewRange4 从地址和前缀长度构造 IPv4 块，地址被归一化到网络边界。
//
// 零值地址返回 [ErrInvalidAddress]；非 IPv4 地址返回 [ErrWrongFamily]；
// prefix 超出 [0, 32] 返回 [ErrPrefixOutOfRange]。
func NewRange4(addr netip.Addr, prefix int) (Range4, error) {
	if !addr.IsValid() {
		return Range4{}, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
	if !addr.Is4() {
		return Range4{}, fmt.Errorf("%w: expected IPv4, got %s", ErrWrongFamily, addr)
	}
	if prefix < 0 || prefix > 32 {
		return Range4{}, fmt.Errorf("%w: %d not in [0, 32]", ErrPrefixOutOfRange, prefix)
	}
	return Range4{b: makeBlock(w32FromAddr(addr), prefix)}, nil
}

// w32FromAddr 把 IPv4 地址转为 32 位网络字节序整数。
// 调用方保证 addr.Is4()。
func w32FromAddr(addr netip.Addr) w32 {
	b := addr.As4()
	return w32(binary.BigEndian.Uint32(b[:]))
}

// addrFromW32 把 32 位整数转回 IPv4 地址。
func addrFromW32(v w32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return netip.AddrFrom4(b)
}

// IsValid 报告 r 是否由构造函数产生。零值 Range4{} 返回 false。
//
// 零值的 prefix 为 0 而 last 不是全 1，违反块不变式，
// 因此不会与任何构造出的块相等（含 "0.0.0.0/0"）。
func (r Range4) IsValid() bool {
	return r != Range4{}
}

// String 返回规范字符串形式 "<network>/<prefixLength>"。
// 与 [ParseRange4] 的文法互为往返。无效块返回空字符串。
func (r Range4) String() string {
	if !r.IsValid() {
		return ""
	}
	return r.Network().String() + "/" + strconv.Itoa(r.b.prefix)
}

// PrefixLength 返回前缀长度，区间 [0, 32]。
func (r Range4) PrefixLength() int { return r.b.prefix }

// Network 返回网络地址（块内最低地址）。无效块返回零值。
func (r Range4) Network() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW32(r.b.network)
}

// Mask 返回前缀对应的子网掩码的点分形式。无效块返回零值。
func (r Range4) Mask() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW32(maskOf[w32](r.b.prefix))
}

// Last 返回块内最高地址（IPv4 语境下即广播地址）。无效块返回零值。
func (r Range4) Last() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW32(r.b.last)
}

// FirstUsable 返回第一个可用地址（network+1）。
// /31 和 /32 没有保留的网络地址，返回网络地址本身。无效块返回零值。
func (r Range4) FirstUsable() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW32(r.b.firstUsable())
}

// LastUsable 返回最后一个可用地址（last-1）。
// /31 和 /32 没有保留的广播地址，返回最高地址本身。无效块返回零值。
func (r Range4) LastUsable() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	return addrFromW32(r.b.lastUsable())
}

// AddressCount 返回块内地址总数 2^(32-prefix)。
// /0 已达 2^32，超出 uint32，故返回 [*big.Int]。无效块返回 nil。
func (r Range4) AddressCount() *big.Int {
	if !r.IsValid() {
		return nil
	}
	return r.b.addressCount()
}

// IsHost 报告块是否仅含单个地址（/32）。
func (r Range4) IsHost() bool {
	return r.IsValid() && r.b.isHost()
}

// Contains 报告 addr 是否落在块内（网络地址与广播地址均为成员）。
//
// 零值地址是编程错误，返回 [ErrInvalidAddress] 以区别于
// "合法输入、不在块内" 的 false。IPv6 地址（含 IPv4-mapped 形式）
// 返回 (false, nil)：跨地址族的包含关系有明确定义的否定答案，
// 与构造函数对错误地址族报错的行为是刻意的不对称。
// 零值块不包含任何地址。
func (r Range4) Contains(addr netip.Addr) (bool, error) {
	if !addr.IsValid() {
		return false, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
	if !r.IsValid() || !addr.Is4() {
		return false, nil
	}
	return r.b.contains(w32FromAddr(addr)), nil
}

// OverlapsWith 报告两个块的地址区间是否有交集。
// 对称谓词：a.OverlapsWith(b) == b.OverlapsWith(a) 恒成立。
func (r Range4) OverlapsWith(o Range4) bool {
	return r.IsValid() && o.IsValid() && r.b.overlaps(o.b)
}

// IsSubnetOf 报告 r 的地址区间是否完全落在 o 内。
// 自反：块是自身的子网。
func (r Range4) IsSubnetOf(o Range4) bool {
	return r.IsValid() && o.IsValid() && r.b.subnetOf(o.b)
}

// IsSupernetOf 报告 o 是否是 r 的子网。
// 恒定义为 o.IsSubnetOf(r)，保证两个谓词永不矛盾。
func (r Range4) IsSupernetOf(o Range4) bool {
	return o.IsSubnetOf(r)
}

// Compare 定义全序：网络地址升序，相同时前缀长度升序。
// 返回值：-1 (r < o)，0 (r == o)，1 (r > o)。
// 可直接用作 [slices.SortFunc] 的比较函数。
func (r Range4) Compare(o Range4) int {
	return r.b.compare(o.b)
}

// Subnets 返回把块切分为 newPrefix 宽度子网的惰性序列。
//
// newPrefix 必须严格大于当前前缀且不超过 32，否则返回
// [ErrInvalidSubdivision]，不产生任何输出。返回的序列可重放：
// 每次 range 都从头生成同一串子网，元素独立构造，不共享状态。
//
//	r := xcidr.MustParseRange4("192.168.1.0/24")
//	seq, _ := r.Subnets(26)
//	for sub := range seq {
//	    fmt.Println(sub) // 192.168.1.0/26 ... 192.168.1.192/26
//	}
func (r Range4) Subnets(newPrefix int) (iter.Seq[Range4], error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: zero Range4", ErrInvalidSubdivision)
	}
	if newPrefix <= r.b.prefix || newPrefix > 32 {
		return nil, fmt.Errorf("%w: new prefix %d must be in (%d, 32]", ErrInvalidSubdivision, newPrefix, r.b.prefix)
	}
	inner := r.b.subnets(newPrefix)
	return func(yield func(Range4) bool) {
		for sb := range inner {
			if !yield(Range4{b: sb}) {
				return
			}
		}
	}, nil
}

// Supernet 返回把网络地址掩码到更短前缀后的包络块。
// newPrefix 必须在 [0, 当前前缀) 内，否则返回 [ErrInvalidSubdivision]。
func (r Range4) Supernet(newPrefix int) (Range4, error) {
	if !r.IsValid() {
		return Range4{}, fmt.Errorf("%w: zero Range4", ErrInvalidSubdivision)
	}
	if newPrefix < 0 || newPrefix >= r.b.prefix {
		return Range4{}, fmt.Errorf("%w: new prefix %d must be in [0, %d)", ErrInvalidSubdivision, newPrefix, r.b.prefix)
	}
	return Range4{b: r.b.supernet(newPrefix)}, nil
}
