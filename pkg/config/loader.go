package config

import (
	"os"

	"github.com/decker502/jetstrike/pkg/embedded"
)

// readConfigFile 读取配置文件
// 优先从嵌入文件系统读取，不存在时回退到本地文件系统（支持 -config 覆盖和测试临时文件）
func readConfigFile(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
