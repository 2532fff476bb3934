package xcidr

import (
	"net/netip"
	"testing"
)

func BenchmarkParseRange4(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = ParseRange4("192.168.1.0/24")
	}
}

func BenchmarkParseRange6(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = ParseRange6("2001:db8::/64")
	}
}

func BenchmarkContains(b *testing.B) {
	r := MustParseRange4("10.0.0.0/8")
	addr := netip.MustParseAddr("10.200.1.1")
	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_, _ = r.Contains(addr)
	}
}

func BenchmarkContains6(b *testing.B) {
	r := MustParseRange6("2001:db8::/32")
	addr := netip.MustParseAddr("2001:db8::1")
	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_, _ = r.Contains(addr)
	}
}

func BenchmarkOverlapsWith(b *testing.B) {
	x := MustParseRange4("10.0.0.0/8")
	y := MustParseRange4("10.128.0.0/9")
	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_ = x.OverlapsWith(y)
	}
}

func BenchmarkSubnets(b *testing.B) {
	r := MustParseRange4("10.0.0.0/16")
	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		seq, _ := r.Subnets(24)
		for range seq {
		}
	}
}

func BenchmarkHash(b *testing.B) {
	r := MustParseRange4("192.168.1.0/24")
	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_ = r.Hash()
	}
}
