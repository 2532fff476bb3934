package xcidr

import (
	"cmp"
	"iter"
	"math/big"

	"github.com/omeyang/cidrkit/internal/uint128"
)

// word 抽象两种地址宽度共用的定宽无符号整数运算。
//
// Range4 和 Range6 的关系运算与子网切分完全共享同一份算法体
// （见 block），两个地址族仅在 word 的位宽上有差异，
// 避免 32 位与 128 位两份实现在边界条件上各自漂移。
type word[W any] interface {
	comparable
	and(W) W
	or(W) W
	xor(W) W
	not() W
	lsh(uint) W
	cmp(W) int
	// addCheck 返回和以及是否溢出（进位跑出最高位）。
	addCheck(W) (W, bool)
	// one 返回数值 1，bitLen 返回位宽。定义为方法而非包级常量，
	// 使泛型代码可以从零值 W 处取得地址族常量。
	one() W
	bitLen() int
}

// w32 是 32 位地址族的 word。
type w32 uint32

func (w w32) and(o w32) w32  { return w & o }
func (w w32) or(o w32) w32   { return w | o }
func (w w32) xor(o w32) w32  { return w ^ o }
func (w w32) not() w32       { return ^w }
func (w w32) lsh(n uint) w32 { return w << n }
func (w w32) cmp(o w32) int  { return cmp.Compare(w, o) }
func (w w32) addCheck(o w32) (w32, bool) {
	sum := w + o
	return sum, sum < w
}
func (w32) one() w32    { return 1 }
func (w32) bitLen() int { return 32 }


// w128 是 128 位地址族的 word，委托给 [uint128.Uint128]。
type w128 uint128.Uint128

func (w w128) and(o w128) w128 { return w128(uint128.Uint128(w).And(uint128.Uint128(o))) }
func (w w128) or(o w128) w128  { return w128(uint128.Uint128(w).Or(uint128.Uint128(o))) }
func (w w128) xor(o w128) w128 { return w128(uint128.Uint128(w).Xor(uint128.Uint128(o))) }
func (w w128) not() w128       { return w128(uint128.Uint128(w).Not()) }
func (w w128) lsh(n uint) w128 { return w128(uint128.Uint128(w).Lsh(n)) }
func (w w128) cmp(o w128) int  { return uint128.Uint128(w).Cmp(uint128.Uint128(o)) }
func (w w128) addCheck(o w128) (w128, bool) {
	sum, overflow := uint128.Uint128(w).AddCheck(uint128.Uint128(o))
	return w128(sum), overflow
}
func (w128) one() w128   { return w128(uint128.From64(1)) }
func (w128) bitLen() int { return 128 }

// maskOf 计算前缀掩码：高 prefix 位为 1，其余为 0。
// Go 的移位语义保证 prefix == 0 时（移位量等于位宽）结果为全 0，
// 无需单独分支。
func maskOf[W word[W]](prefix int) W {
	var zero W
	return zero.not().lsh(uint(zero.bitLen() - prefix))
}

// block 是两个地址族共享的算法体：一个前缀对齐的不可变地址块。
//
// 不变式（构造后恒成立）：
//   - network <= last
//   - network 前缀对齐：network & mask == network
//   - 0 <= prefix <= bitLen
//   - last 由 network 和 prefix 唯一确定，因此 == 比较
//     等价于按 (network, prefix) 比较
type block[W word[W]] struct {
	network W
	last    W
	prefix  int
}

// makeBlock 从任意地址和前缀构造块，地址被掩码归一化到网络边界。
// 调用方负责先校验 prefix 区间。
func makeBlock[W word[W]](addr W, prefix int) block[W] {
	mask := maskOf[W](prefix)
	network := addr.and(mask)
	return block[W]{
		network: network,
		last:    network.or(mask.not()),
		prefix:  prefix,
	}
}

func (b block[W]) bits() int { return b.network.bitLen() }

func (b block[W]) isHost() bool { return b.prefix == b.bits() }

// contains 报告地址值是否落在 [network, last] 内（两端含）。
func (b block[W]) contains(v W) bool {
	return b.network.cmp(v) <= 0 && v.cmp(b.last) <= 0
}

// overlaps 报告两个块的地址区间是否有交集。对称谓词。
func (b block[W]) overlaps(o block[W]) bool {
	return b.network.cmp(o.last) <= 0 && b.last.cmp(o.network) >= 0
}

// subnetOf 报告 b 的地址区间是否完全落在 o 内。自反：块是自身的子网。
func (b block[W]) subnetOf(o block[W]) bool {
	return b.network.cmp(o.network) >= 0 && b.last.cmp(o.last) <= 0
}

// compare 定义全序：network 升序，相同时 prefix 升序
// （同起点时更小的网络排在更大的网络之后）。
func (b block[W]) compare(o block[W]) int {
	if c := b.network.cmp(o.network); c != 0 {
		return c
	}
	return cmp.Compare(b.prefix, o.prefix)
}

// firstUsable 返回第一个可用地址。
// prefix 为 W-1 或 W 时块内没有单独的网络地址，网络地址本身即可用。
func (b block[W]) firstUsable() W {
	if b.prefix >= b.bits()-1 {
		return b.network
	}
	var zero W
	// network 前缀对齐且 prefix <= W-2，最低位必为 0，按位或即 +1
	return b.network.or(zero.one())
}

// lastUsable 返回最后一个可用地址。
func (b block[W]) lastUsable() W {
	if b.prefix >= b.bits()-1 {
		return b.last
	}
	var zero W
	// last 的主机位全 1 且 prefix <= W-2，最低位必为 1，异或即 -1
	return b.last.xor(zero.one())
}

// addressCount 返回块内地址总数 2^(W-prefix)。
// 32 位族的 /0 已达 2^32，128 位族最大 2^128，必须用 [math/big]。
func (b block[W]) addressCount() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(b.bits()-b.prefix))
}

// supernet 返回把 network 掩码到更短前缀后的包络块。
// 调用方负责校验 newPrefix < b.prefix。
func (b block[W]) supernet(newPrefix int) block[W] {
	return makeBlock(b.network, newPrefix)
}

// subnets 返回按 newPrefix 切分的惰性序列。
// 调用方负责校验 b.prefix < newPrefix <= W；每次调用返回独立的
// 可重放序列，元素逐个构造，不共享状态。
//
// 步进使用带进位检查的加法：当最后一个子网的起点距地址空间顶端
// 不足一个 step 时，加法会溢出回绕，必须在回绕前终止而不是吐出
// 损坏的值。
func (b block[W]) subnets(newPrefix int) iter.Seq[block[W]] {
	return func(yield func(block[W]) bool) {
		var zero W
		step := zero.one().lsh(uint(b.bits() - newPrefix))
		hostMask := maskOf[W](newPrefix).not()
		cur := b.network
		for {
			sub := block[W]{network: cur, last: cur.or(hostMask), prefix: newPrefix}
			if !yield(sub) {
				return
			}
			next, overflow := cur.addCheck(step)
			if overflow || next.cmp(b.last) > 0 {
				return
			}
			cur = next
		}
	}
}
