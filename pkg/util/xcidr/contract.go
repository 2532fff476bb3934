package xcidr

import (
	"fmt"
	"iter"
	"math/big"
	"net/netip"

	"go4.org/netipx"
)

// Range 是两个地址族共同的查询契约。
//
// [Range4] 和 [Range6] 必须以相同的形状实现这里的每个操作；
// 涉及同族另一个块的关系运算见 [Relational]。
// [Parse] 按输入的地址族返回其中之一。
type Range interface {
	fmt.Stringer

	// IsValid 报告值是否由构造函数产生。
	IsValid() bool
	// PrefixLength 返回前缀长度，区间 [0, W]。
	PrefixLength() int
	// Network 返回网络地址（块内最低地址）。
	Network() netip.Addr
	// Mask 返回前缀掩码的地址形式。
	Mask() netip.Addr
	// FirstUsable 返回第一个可用地址；/W-1 和 /W 时即网络地址。
	FirstUsable() netip.Addr
	// LastUsable 返回最后一个可用地址；/W-1 和 /W 时即最高地址。
	LastUsable() netip.Addr
	// Last 返回块内最高地址。
	Last() netip.Addr
	// AddressCount 返回块内地址总数 2^(W-prefix)。
	AddressCount() *big.Int
	// IsHost 报告块是否仅含单个地址。
	IsHost() bool
	// Contains 报告地址是否落在块内；跨地址族返回 (false, nil)，
	// 零值地址返回 ErrInvalidAddress。
	Contains(netip.Addr) (bool, error)
	// Hash 返回与 == 一致的 64 位散列。
	Hash() uint64
	// Prefix 返回 [net/netip.Prefix] 互操作形式。
	Prefix() netip.Prefix
	// IPRange 返回 [go4.org/netipx.IPRange] 互操作形式。
	IPRange() netipx.IPRange
}

// Relational 描述同一地址族内的关系运算契约。
// 类型参数 R 是实现类型自身（Range4 或 Range6），
// 保证两个族的关系运算签名完全平行。
type Relational[R any] interface {
	Range

	// OverlapsWith 是对称谓词：a.OverlapsWith(b) == b.OverlapsWith(a)。
	OverlapsWith(R) bool
	// IsSubnetOf 自反：块是自身的子网。
	IsSubnetOf(R) bool
	// IsSupernetOf 恒等价于参数方向相反的 IsSubnetOf。
	IsSupernetOf(R) bool
	// Compare 定义全序：网络地址升序，相同时前缀长度升序。
	Compare(R) int
	// Subnets 返回惰性、可重放的切分序列。
	Subnets(int) (iter.Seq[R], error)
	// Supernet 返回更短前缀的包络块。
	Supernet(int) (R, error)
}

// 两个地址族对契约的实现差异在编译期暴露。
var (
	_ Relational[Range4] = Range4{}
	_ Relational[Range6] = Range6{}
)
