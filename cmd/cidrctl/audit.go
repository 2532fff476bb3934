package main

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
	"go4.org/netipx"

	"github.com/omeyang/cidrkit/pkg/util/xcidr"
)

// auditPlan 是审计文件的结构：一组待校验的 CIDR 与一组待归属的地址。
type auditPlan struct {
	Ranges    []string `koanf:"ranges"`
	Addresses []string `koanf:"addresses"`
}

func createAuditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "批量校验 YAML/JSON 文件中的 CIDR 并检查地址归属",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "审计文件路径（.yaml/.yml/.json）",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdAudit(os.Stdout, cmd.String("file"))
		},
	}
}

// loadAuditPlan 按扩展名选择解析器加载审计文件。
func loadAuditPlan(path string) (*auditPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取审计文件失败: %w", err)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, usageErrorf("不支持的文件格式 %q（仅支持 .yaml/.yml/.json）", filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("解析审计文件失败: %w", err)
	}

	var plan auditPlan
	if err := k.Unmarshal("", &plan); err != nil {
		return nil, fmt.Errorf("解析审计文件失败: %w", err)
	}
	return &plan, nil
}

// cmdAudit 对审计文件执行三段检查：CIDR 有效性、地址归属、合并覆盖。
// 存在无效条目或未被覆盖的地址时返回 falseResultError（退出码 1）。
func cmdAudit(w io.Writer, path string) error {
	plan, err := loadAuditPlan(path)
	if err != nil {
		return err
	}

	var v4 []xcidr.Range4
	var v6 []xcidr.Range6
	bad := 0
	for _, s := range plan.Ranges {
		if r, ok := xcidr.TryParseRange4(s); ok {
			v4 = append(v4, r)
			continue
		}
		if r, ok := xcidr.TryParseRange6(s); ok {
			v6 = append(v6, r)
			continue
		}
		fmt.Fprintf(w, "invalid range: %s\n", s)
		bad++
	}
	fmt.Fprintf(w, "ranges: %d valid, %d invalid\n", len(v4)+len(v6), bad)

	var builder netipx.IPSetBuilder
	for _, r := range v4 {
		builder.AddPrefix(r.Prefix())
	}
	for _, r := range v6 {
		builder.AddPrefix(r.Prefix())
	}
	set, err := builder.IPSet()
	if err != nil {
		return fmt.Errorf("合并覆盖集失败: %w", err)
	}

	uncovered := 0
	for _, s := range plan.Addresses {
		addr, err := netip.ParseAddr(s)
		if err != nil {
			fmt.Fprintf(w, "invalid address: %s\n", s)
			bad++
			continue
		}
		if set.Contains(addr) {
			fmt.Fprintf(w, "covered: %s\n", s)
		} else {
			fmt.Fprintf(w, "uncovered: %s\n", s)
			uncovered++
		}
	}

	if ranges := set.Ranges(); len(ranges) > 0 {
		fmt.Fprintln(w, "merged coverage:")
		for _, r := range ranges {
			fmt.Fprintf(w, "  %s\n", r)
		}
	}

	if bad > 0 || uncovered > 0 {
		return &falseResultError{}
	}
	return nil
}
