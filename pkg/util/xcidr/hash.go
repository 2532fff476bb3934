package xcidr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/omeyang/cidrkit/internal/uint128"
)

// 散列输入的地址族标签，避免两个族的同构块（如 0.0.0.0/0 与 ::/0）
// 散列到同一个值。

// Hash 返回块的 64 位散列。
//
// 与 == 一致：相等的块（相同网络地址与前缀长度）在进程生命周期内
// 恒得到相同散列，无论经由哪个构造函数产生。
func (r Range4) Hash() uint64 {
	var buf [6]byte
	buf[0] = 4
	binary.BigEndian.PutUint32(buf[1:5], uint32(r.b.network))
	buf[5] = byte(r.b.prefix)
	return xxhash.Sum64(buf[:])
}

// Hash 返回块的 64 位散列，约定与 [Range4.Hash] 相同。
func (r Range6) Hash() uint64 {
	var buf [18]byte
	buf[0] = 6
	b16 := uint128.Uint128(r.b.network).As16()
	copy(buf[1:17], b16[:])
	buf[17] = byte(r.b.prefix)
	return xxhash.Sum64(buf[:])
}
