// cidrctl 是 xcidr 地址块库的命令行演示工具。
//
// 用法:
//
//	cidrctl <命令> [命令参数]
//
// 命令:
//
//	info <cidr>                  查看块的网络/掩码/可用地址/总数/分类
//	contains <cidr> <ip>         判断地址是否落在块内
//	split <cidr> <new-prefix>    按新前缀切分子网（--limit 控制输出条数）
//	supernet <cidr> <new-prefix> 求更短前缀的包络块
//	overlaps <cidr> <cidr>       判断两个块是否重叠
//	subnet-of <cidr> <cidr>      判断第一个块是否是第二个的子网
//	sort <cidr>...               按全序输出（IPv4 在前，IPv6 在后）
//	audit --file <rules.yaml>    批量校验规则文件并核对地址归属
//
// 退出码:
//
//	0: 命令执行成功（contains/overlaps/subnet-of: 判断结果为 true）
//	1: 操作失败或判断结果为 false（无效 CIDR、audit 发现无效条目等）
//	2: 参数错误（缺少参数、未知命令、未知 flag 等）
//
// 示例:
//
//	cidrctl info 10.0.0.5/24
//	cidrctl split 192.168.1.0/24 26
//	cidrctl contains 10.0.0.0/8 10.1.2.3
//	cidrctl sort 192.168.1.128/25 10.0.0.0/8 192.168.1.0/24
//	cidrctl audit --file rules.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "cidrctl",
		Usage:          "CIDR 地址块运算命令行工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"CIDRKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var falseErr *falseResultError
		if errors.As(err, &falseErr) {
			// 判断型命令的否定结果：输出已完成，仅设置退出码
			return 1
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr.msg)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// CLI 框架的参数错误已由 ExitErrHandler 输出
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
