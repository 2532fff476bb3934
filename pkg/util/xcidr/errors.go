package xcidr

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmptyInput 表示输入为空或仅含空白字符。
	ErrEmptyInput = errors.New("xcidr: empty input")

	// ErrInvalidAddress 表示必需的地址参数是零值 [net/netip.Addr]
	// 或带有 IPv6 zone 而无法表示 CIDR 块。
	ErrInvalidAddress = errors.New("xcidr: invalid address")

	// ErrMalformedCIDR 表示字符串不符合 "<address>/<prefixLength>" 文法。
	ErrMalformedCIDR = errors.New("xcidr: malformed CIDR")

	// ErrWrongFamily 表示提供的地址属于另一个 IP 地址族。
	// 注意 Contains 例外：跨地址族的包含判断返回 false 而非错误。
	ErrWrongFamily = errors.New("xcidr: wrong address family")

	// ErrPrefixOutOfRange 表示前缀长度超出 [0, W] 区间。
	ErrPrefixOutOfRange = errors.New("xcidr: prefix length out of range")

	// ErrInvalidSubdivision 表示 Subnets/Supernet 的目标前缀未朝要求的
	// 方向移动，或（仅 128 位族）一次请求会产生超过 2^63 个子网。
	ErrInvalidSubdivision = errors.New("xcidr: invalid subdivision request")
)
