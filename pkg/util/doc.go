// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xcidr: CIDR 地址块工具库，IPv4/IPv6 解析、规范化、集合关系、子网切分与分类
//
// 设计原则：
//   - 值语义、零值无效，与 net/netip 风格保持一致
//   - 显式错误返回，错误变量支持 errors.Is 判断
//   - 跨地址族操作行为明确，不做隐式转换
package util
