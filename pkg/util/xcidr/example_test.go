package xcidr_test

import (
	"fmt"
	"net/netip"
	"slices"

	"github.com/omeyang/cidrkit/pkg/util/xcidr"
)

func ExampleParseRange4() {
	// 主机地址被归一化到网络边界
	r, _ := xcidr.ParseRange4("10.0.0.5/24")
	fmt.Println(r)
	fmt.Println(r.Network(), "-", r.Last())
	fmt.Println("addresses:", r.AddressCount())

	// Output:
	// 10.0.0.0/24
	// 10.0.0.0 - 10.0.0.255
	// addresses: 256
}

func ExampleRange4_Contains() {
	r := xcidr.MustParseRange4("192.168.1.0/24")

	for _, s := range []string{"192.168.1.0", "192.168.1.255", "192.168.2.0"} {
		ok, _ := r.Contains(netip.MustParseAddr(s))
		fmt.Printf("%s: %v\n", s, ok)
	}

	// 跨地址族恒为 false，不报错
	ok, err := r.Contains(netip.MustParseAddr("2001:db8::1"))
	fmt.Println("2001:db8::1:", ok, err)

	// Output:
	// 192.168.1.0: true
	// 192.168.1.255: true
	// 192.168.2.0: false
	// 2001:db8::1: false <nil>
}

func ExampleRange4_Subnets() {
	r := xcidr.MustParseRange4("192.168.1.0/24")

	seq, _ := r.Subnets(26)
	for s := range seq {
		fmt.Println(s)
	}

	// Output:
	// 192.168.1.0/26
	// 192.168.1.64/26
	// 192.168.1.128/26
	// 192.168.1.192/26
}

func ExampleRange4_Compare() {
	rs := []xcidr.Range4{
		xcidr.MustParseRange4("192.168.1.128/25"),
		xcidr.MustParseRange4("10.0.0.0/8"),
		xcidr.MustParseRange4("192.168.1.0/24"),
		xcidr.MustParseRange4("10.0.0.0/16"),
	}
	slices.SortFunc(rs, xcidr.Range4.Compare)
	for _, r := range rs {
		fmt.Println(r)
	}

	// Output:
	// 10.0.0.0/8
	// 10.0.0.0/16
	// 192.168.1.0/24
	// 192.168.1.128/25
}

func ExampleRange6_Subnets() {
	r := xcidr.MustParseRange6("2001:db8::/32")

	seq, _ := r.Subnets(34)
	for s := range seq {
		fmt.Println(s)
	}

	// 过大的切分请求在产生任何输出前被拒绝
	_, err := r.Subnets(96)
	fmt.Println(err != nil)

	// Output:
	// 2001:db8::/34
	// 2001:db8:4000::/34
	// 2001:db8:8000::/34
	// 2001:db8:c000::/34
	// true
}

func ExampleTryParseRange4() {
	inputs := []string{"10.0.0.0/8", "not-a-cidr", "2001:db8::/32"}

	for _, s := range inputs {
		if r, ok := xcidr.TryParseRange4(s); ok {
			fmt.Println("ok:", r)
		} else {
			fmt.Println("invalid:", s)
		}
	}

	// Output:
	// ok: 10.0.0.0/8
	// invalid: not-a-cidr
	// invalid: 2001:db8::/32
}
