//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 不能引用包目录之外的文件，构建前需要先把 data/ 复制到此目录：
//
//	make prepare-mobile
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/tuning.yaml
var dataFS embed.FS
