package xcidr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// parseCIDR 解析两个地址族共用的 "<address>/<prefixLength>" 文法。
//
// 严格模式：
//   - 去除首尾空白后必须恰好含一个 '/'（分段数错误即格式错误）
//   - '/' 两侧分段各自去除空白，均不得为空
//   - 前缀分段必须是纯十进制数字（拒绝符号、空格、十六进制）
//
// 地址族与前缀区间的校验留给类型化构造函数。
func parseCIDR(s string) (netip.Addr, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, 0, ErrEmptyInput
	}
	if strings.Count(s, "/") != 1 {
		return netip.Addr{}, 0, fmt.Errorf("%w: expected exactly one '/' in %q", ErrMalformedCIDR, s)
	}

	addrStr, prefixStr, _ := strings.Cut(s, "/")
	addrStr = strings.TrimSpace(addrStr)
	prefixStr = strings.TrimSpace(prefixStr)
	if addrStr == "" {
		return netip.Addr{}, 0, fmt.Errorf("%w: missing address in %q", ErrMalformedCIDR, s)
	}
	if prefixStr == "" {
		return netip.Addr{}, 0, fmt.Errorf("%w: missing prefix length in %q", ErrMalformedCIDR, s)
	}

	// strconv.Atoi 额外接受 "+24"、"-1" 等带符号形式，先做纯数字检查。
	if !isDigits(prefixStr) {
		return netip.Addr{}, 0, fmt.Errorf("%w: non-numeric prefix length %q", ErrMalformedCIDR, prefixStr)
	}
	prefix, err := strconv.Atoi(prefixStr)
	if err != nil {
		return netip.Addr{}, 0, fmt.Errorf("%w: prefix length %q: %w", ErrMalformedCIDR, prefixStr, err)
	}

	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return netip.Addr{}, 0, fmt.Errorf("%w: address %q: %w", ErrMalformedCIDR, addrStr, err)
	}
	return addr, prefix, nil
}

// isDigits 报告 s 是否全部由 ASCII 十进制数字组成。
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Parse 解析 CIDR 字符串并按地址族返回 [Range4] 或 [Range6]。
//
// 需要具体类型及其关系运算时，请直接使用 [ParseRange4] / [ParseRange6]。
func Parse(s string) (Range, error) {
	addr, prefix, err := parseCIDR(s)
	if err != nil {
		return nil, err
	}
	if addr.Is4() {
		r, err := NewRange4(addr, prefix)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	r, err := NewRange6(addr, prefix)
	if err != nil {
		return nil, err
	}
	return r, nil
}
