package main

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"os"
	"slices"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/cidrkit/pkg/util/xcidr"
)

// usageError 表示参数错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// falseResultError 表示判断型命令得到否定结果（退出码 1）。
// 结果本身已输出，main 只需设置退出码。
type falseResultError struct{}

func (*falseResultError) Error() string { return "" }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createInfoCommand(),
		createContainsCommand(),
		createSplitCommand(),
		createSupernetCommand(),
		createOverlapsCommand(),
		createSubnetOfCommand(),
		createSortCommand(),
		createAuditCommand(),
	}
}

func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "查看块的网络/掩码/可用地址/总数/分类",
		ArgsUsage: "<cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usageErrorf("info 需要一个 CIDR 参数")
			}
			return cmdInfo(os.Stdout, cmd.Args().First())
		},
	}
}

func createContainsCommand() *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Usage:     "判断地址是否落在块内",
		ArgsUsage: "<cidr> <ip>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("contains 需要 <cidr> <ip> 两个参数")
			}
			return cmdContains(os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

func createSplitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "按新前缀切分子网",
		ArgsUsage: "<cidr> <new-prefix>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "最多输出的子网条数",
				Value:   64,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("split 需要 <cidr> <new-prefix> 两个参数")
			}
			newPrefix, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return usageErrorf("无效的前缀长度 %q", cmd.Args().Get(1))
			}
			return cmdSplit(os.Stdout, cmd.Args().Get(0), newPrefix, cmd.Int("limit"))
		},
	}
}

func createSupernetCommand() *cli.Command {
	return &cli.Command{
		Name:      "supernet",
		Usage:     "求更短前缀的包络块",
		ArgsUsage: "<cidr> <new-prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("supernet 需要 <cidr> <new-prefix> 两个参数")
			}
			newPrefix, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return usageErrorf("无效的前缀长度 %q", cmd.Args().Get(1))
			}
			return cmdSupernet(os.Stdout, cmd.Args().Get(0), newPrefix)
		},
	}
}

func createOverlapsCommand() *cli.Command {
	return &cli.Command{
		Name:      "overlaps",
		Usage:     "判断两个块是否重叠",
		ArgsUsage: "<cidr> <cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("overlaps 需要两个 CIDR 参数")
			}
			return cmdOverlaps(os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

func createSubnetOfCommand() *cli.Command {
	return &cli.Command{
		Name:      "subnet-of",
		Usage:     "判断第一个块是否是第二个的子网",
		ArgsUsage: "<cidr> <cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("subnet-of 需要两个 CIDR 参数")
			}
			return cmdSubnetOf(os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

func createSortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "按全序输出（IPv4 在前，IPv6 在后）",
		ArgsUsage: "<cidr>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return usageErrorf("sort 至少需要一个 CIDR 参数")
			}
			return cmdSort(os.Stdout, cmd.Args().Slice())
		},
	}
}

// cmdInfo 输出块的完整查询面。
func cmdInfo(w io.Writer, cidr string) error {
	r, err := xcidr.Parse(cidr)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", cidr, err)
	}

	fmt.Fprintf(w, "range:        %s\n", r)
	fmt.Fprintf(w, "network:      %s\n", r.Network())
	fmt.Fprintf(w, "mask:         %s\n", r.Mask())
	fmt.Fprintf(w, "first usable: %s\n", r.FirstUsable())
	fmt.Fprintf(w, "last usable:  %s\n", r.LastUsable())
	fmt.Fprintf(w, "last:         %s\n", r.Last())
	fmt.Fprintf(w, "addresses:    %s\n", r.AddressCount())
	fmt.Fprintf(w, "host:         %v\n", r.IsHost())
	fmt.Fprintf(w, "class:        %s\n", classLabel(r))
	return nil
}

// classLabel 返回块的分类标签。
func classLabel(r xcidr.Range) string {
	switch v := r.(type) {
	case xcidr.Range4:
		switch {
		case v.IsLoopback():
			return "loopback"
		case v.IsPrivate():
			return "private (RFC 1918)"
		default:
			return "other"
		}
	case xcidr.Range6:
		switch {
		case v.IsLoopback():
			return "loopback"
		case v.IsLinkLocal():
			return "link-local"
		case v.IsUniqueLocal():
			return "unique-local"
		default:
			return "other"
		}
	default:
		return "unknown"
	}
}

// cmdContains 输出成员判断结果；false 时返回 falseResultError（退出码 1）。
func cmdContains(w io.Writer, cidr, ip string) error {
	r, err := xcidr.Parse(cidr)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", cidr, err)
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return usageErrorf("无效的 IP 地址 %q", ip)
	}

	ok, err := r.Contains(addr)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, ok)
	if !ok {
		return &falseResultError{}
	}
	return nil
}

// cmdSplit 输出切分结果，最多 limit 条。
func cmdSplit(w io.Writer, cidr string, newPrefix, limit int) error {
	r, err := xcidr.Parse(cidr)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", cidr, err)
	}

	printed := 0
	emit := func(s fmt.Stringer) bool {
		if limit > 0 && printed >= limit {
			fmt.Fprintln(w, "... (truncated)")
			return false
		}
		fmt.Fprintln(w, s)
		printed++
		return true
	}

	switch v := r.(type) {
	case xcidr.Range4:
		seq, err := v.Subnets(newPrefix)
		if err != nil {
			return err
		}
		for s := range seq {
			if !emit(s) {
				break
			}
		}
	case xcidr.Range6:
		seq, err := v.Subnets(newPrefix)
		if err != nil {
			return err
		}
		for s := range seq {
			if !emit(s) {
				break
			}
		}
	}
	return nil
}

// cmdSupernet 输出包络块。
func cmdSupernet(w io.Writer, cidr string, newPrefix int) error {
	r, err := xcidr.Parse(cidr)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", cidr, err)
	}

	switch v := r.(type) {
	case xcidr.Range4:
		sup, err := v.Supernet(newPrefix)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, sup)
	case xcidr.Range6:
		sup, err := v.Supernet(newPrefix)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, sup)
	}
	return nil
}

// parsePair 解析两个 CIDR，各自保留其地址族。
func parsePair(a, b string) (xcidr.Range, xcidr.Range, error) {
	ra, err := xcidr.Parse(a)
	if err != nil {
		return nil, nil, fmt.Errorf("解析 %q 失败: %w", a, err)
	}
	rb, err := xcidr.Parse(b)
	if err != nil {
		return nil, nil, fmt.Errorf("解析 %q 失败: %w", b, err)
	}
	return ra, rb, nil
}

// cmdOverlaps 输出重叠判断；异族块恒不重叠。
func cmdOverlaps(w io.Writer, a, b string) error {
	ra, rb, err := parsePair(a, b)
	if err != nil {
		return err
	}

	got := false
	if x, ok := ra.(xcidr.Range4); ok {
		if y, ok := rb.(xcidr.Range4); ok {
			got = x.OverlapsWith(y)
		}
	}
	if x, ok := ra.(xcidr.Range6); ok {
		if y, ok := rb.(xcidr.Range6); ok {
			got = x.OverlapsWith(y)
		}
	}
	fmt.Fprintln(w, got)
	if !got {
		return &falseResultError{}
	}
	return nil
}

// cmdSubnetOf 输出子网判断；异族块恒为 false。
func cmdSubnetOf(w io.Writer, a, b string) error {
	ra, rb, err := parsePair(a, b)
	if err != nil {
		return err
	}

	got := false
	if x, ok := ra.(xcidr.Range4); ok {
		if y, ok := rb.(xcidr.Range4); ok {
			got = x.IsSubnetOf(y)
		}
	}
	if x, ok := ra.(xcidr.Range6); ok {
		if y, ok := rb.(xcidr.Range6); ok {
			got = x.IsSubnetOf(y)
		}
	}
	fmt.Fprintln(w, got)
	if !got {
		return &falseResultError{}
	}
	return nil
}

// cmdSort 按全序输出，IPv4 组在 IPv6 组之前。
func cmdSort(w io.Writer, args []string) error {
	var v4 []xcidr.Range4
	var v6 []xcidr.Range6
	for _, s := range args {
		r, err := xcidr.Parse(s)
		if err != nil {
			return fmt.Errorf("解析 %q 失败: %w", s, err)
		}
		switch v := r.(type) {
		case xcidr.Range4:
			v4 = append(v4, v)
		case xcidr.Range6:
			v6 = append(v6, v)
		}
	}

	slices.SortFunc(v4, xcidr.Range4.Compare)
	slices.SortFunc(v6, xcidr.Range6.Compare)
	for _, r := range v4 {
		fmt.Fprintln(w, r)
	}
	for _, r := range v6 {
		fmt.Fprintln(w, r)
	}
	return nil
}
