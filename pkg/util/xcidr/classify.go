package xcidr

// 知名特殊地址块。
//
// 设计决策: 使用函数而非包级变量，与只读常量的意图一致，
// 且避免 init 顺序依赖。

// rfc1918Blocks 返回 RFC 1918 定义的三个 IPv4 私有地址块。
func rfc1918Blocks() [3]Range4 {
	return [3]Range4{
		MustParseRange4("10.0.0.0/8"),
		MustParseRange4("172.16.0.0/12"),
		MustParseRange4("192.168.0.0/16"),
	}
}

// loopback4Block 返回 IPv4 环回块 127.0.0.0/8。
func loopback4Block() Range4 { return MustParseRange4("127.0.0.0/8") }

// loopback6Block 返回 IPv6 环回地址 ::1/128。
func loopback6Block() Range6 { return MustParseRange6("::1/128") }

// linkLocal6Block 返回 IPv6 链路本地单播块 fe80::/10。
func linkLocal6Block() Range6 { return MustParseRange6("fe80::/10") }

// uniqueLocal6Block 返回 IPv6 唯一本地块 fc00::/7。
func uniqueLocal6Block() Range6 { return MustParseRange6("fc00::/7") }

// IsPrivate 报告整个块是否落在 RFC 1918 私有地址空间
// （10.0.0.0/8、172.16.0.0/12、192.168.0.0/16）内。
// 横跨私有与公网空间的块不算私有。
func (r Range4) IsPrivate() bool {
	if !r.IsValid() {
		return false
	}
	for _, b := range rfc1918Blocks() {
		if r.IsSubnetOf(b) {
			return true
		}
	}
	return false
}

// IsLoopback 报告整个块是否落在 127.0.0.0/8 内。
func (r Range4) IsLoopback() bool {
	return r.IsSubnetOf(loopback4Block())
}

// IsLoopback 报告块是否就是环回地址 ::1/128。
func (r Range6) IsLoopback() bool {
	return r.IsSubnetOf(loopback6Block())
}

// IsLinkLocal 报告整个块是否落在链路本地单播空间 fe80::/10 内。
func (r Range6) IsLinkLocal() bool {
	return r.IsSubnetOf(linkLocal6Block())
}

// IsUniqueLocal 报告整个块是否落在唯一本地空间 fc00::/7 内。
func (r Range6) IsUniqueLocal() bool {
	return r.IsSubnetOf(uniqueLocal6Block())
}
