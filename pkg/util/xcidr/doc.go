// Package xcidr 提供 CIDR 地址块的值类型模型与集合论运算。
//
// xcidr 基于 Go 标准库 [net/netip] 构建，提供两个结构平行的不可变
// 值类型：[Range4]（IPv4，32 位地址域）和 [Range6]（IPv6，128 位
// 地址域），覆盖成员判断、重叠检测、子网/超网关系、全序比较与
// 子网切分。
//
// # 核心功能
//
//   - range4.go / range6.go: 两个地址族的块类型与构造、查询、关系运算
//   - block.go: 两族共享的泛型算法体（掩码、比较、切分、溢出防护）
//   - parse.go: 严格的 "<address>/<prefixLength>" 文法与 [Parse] 分派
//   - contract.go: [Range] 与 [Relational] 契约
//   - classify.go: RFC 1918 私有、环回、链路本地、唯一本地判定
//   - hash.go: 与 == 一致的 xxhash 散列
//   - netipx.go: [net/netip.Prefix] / [go4.org/netipx.IPRange] 互操作
//
// # 快速示例
//
// 解析并查询：
//
//	r, _ := xcidr.ParseRange4("10.0.0.5/24")
//	fmt.Println(r)                  // 10.0.0.0/24（归一化到网络边界）
//	fmt.Println(r.Last())           // 10.0.0.255
//	fmt.Println(r.AddressCount())   // 256
//
// 成员与关系：
//
//	ok, _ := r.Contains(netip.MustParseAddr("10.0.0.200"))  // true
//	sub := xcidr.MustParseRange4("10.0.0.128/25")
//	fmt.Println(sub.IsSubnetOf(r))   // true
//	fmt.Println(r.IsSupernetOf(sub)) // true
//
// 切分为更小的块：
//
//	seq, _ := r.Subnets(26)
//	for s := range seq {
//	    fmt.Println(s) // 10.0.0.0/26 10.0.0.64/26 10.0.0.128/26 10.0.0.192/26
//	}
//
// # 设计决策
//
//   - 不可变值类型：构造是唯一校验入口，构造后全部字段恒为合法值，
//     没有可变方法，多 goroutine 无锁共享
//   - 零值无效，语义对齐 [net/netip.Addr]：IsValid 区分未初始化与已构造
//   - 相等即 (网络地址, 前缀长度) 相等：last 由二者唯一导出，
//     因此可直接用 ==、用作 map key；[Range4.Hash] 与 == 一致
//   - 两个位宽共用一份泛型算法体（block.go），边界条件只需修一处
//   - 切分是惰性可重放序列（[iter.Seq]），不物化结果；128 位族
//     拒绝前缀增量超过 63 位的请求，防止天文数量的枚举
//   - 地址空间顶端的切分用带进位检查的步进终止，杜绝回绕产生脏值
//
// # 跨地址族行为
//
// 构造函数与 Supernet 等族内运算对另一个族的地址返回
// [ErrWrongFamily]；Contains 刻意例外——"这个块是否包含一个
// 明显异族的地址" 有无歧义的否定答案，返回 (false, nil) 而非报错。
//
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）始终按 16 字节形式处理，
// 不做 Unmap 归一化：对 [Range4] 是异族，对 [Range6] 是普通成员。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xcidr.ParseRange4("10.0.0.0/99")
//	if errors.Is(err, xcidr.ErrPrefixOutOfRange) {
//	    // 前缀越界
//	}
//
// 所有校验失败同步返回给直接调用方，包内不记录、不重试、不恢复。
// 批量校验不可信输入时使用 [TryParseRange4] / [TryParseRange6]。
package xcidr
