// Package uint128 提供 128 位无符号整数的值类型实现。
//
// 仅服务于 128 位地址族的位运算与进位算术，不追求通用大数功能
// （乘除、十进制格式化等一概不提供）。需要任意精度时请使用 [math/big]。
//
// 布局与位序约定与 [net/netip] 的内部 uint128 一致：
// Hi 存高 64 位，Lo 存低 64 位，bit 0 是最高有效位。
package uint128

import (
	"encoding/binary"
	"math/bits"
)

// Uint128 表示一个 128 位无符号整数。
//
// 不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 栈分配，零堆开销
//   - 零值即数值 0
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// From64 从 uint64 创建 Uint128（高 64 位为 0）。
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// From16 从 16 字节数组创建 Uint128（网络字节序，大端）。
func From16(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// As16 返回网络字节序（大端）的 16 字节表示。
func (u Uint128) As16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// Max 返回最大值（128 个 1）。
func Max() Uint128 {
	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
}

// IsZero 报告 u 是否为 0。
func (u Uint128) IsZero() bool {
	return u.Hi|u.Lo == 0
}

// And 返回按位与 u & m。
func (u Uint128) And(m Uint128) Uint128 {
	return Uint128{Hi: u.Hi & m.Hi, Lo: u.Lo & m.Lo}
}

// Or 返回按位或 u | m。
func (u Uint128) Or(m Uint128) Uint128 {
	return Uint128{Hi: u.Hi | m.Hi, Lo: u.Lo | m.Lo}
}

// Xor 返回按位异或 u ^ m。
func (u Uint128) Xor(m Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ m.Hi, Lo: u.Lo ^ m.Lo}
}

// Not 返回按位取反 ^u。
func (u Uint128) Not() Uint128 {
	return Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Lsh 返回左移 n 位的结果。n >= 128 时返回 0。
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{
			Hi: u.Hi<<n | u.Lo>>(64-n),
			Lo: u.Lo << n,
		}
	}
}

// Rsh 返回右移 n 位的结果。n >= 128 时返回 0。
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{
			Hi: u.Hi >> n,
			Lo: u.Lo>>n | u.Hi<<(64-n),
		}
	}
}

// AddCheck 返回 u + v 以及是否发生溢出（进位跑出第 128 位）。
func (u Uint128) AddCheck(v Uint128) (sum Uint128, overflow bool) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, carry != 0
}

// Sub 返回 u - v（模 2^128 回绕，调用方自行保证 u >= v）。
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Cmp 比较 u 和 v。返回值：-1 (u < v)，0 (u == v)，1 (u > v)。
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}
