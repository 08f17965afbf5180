package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"Highlander/internal/shared/simconfig"
)

func TestInit_写入JSON文件(t *testing.T) {
	file := filepath.Join(t.TempDir(), "arena.log")
	if err := Init("test", simconfig.LogConfig{Level: "debug", FileDir: file}); err != nil {
		t.Fatalf("err=%v", err)
	}
	Info("round finished", zap.Int("round", 1))
	Sync()

	raw, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(raw), `"round":1`) || !strings.Contains(string(raw), `"logger":"test"`) {
		t.Fatalf("日志内容不对: %s", raw)
	}
}

func TestSetLevel_非法值回退info(t *testing.T) {
	SetLevel("warn")
	if Level() != zapcore.WarnLevel {
		t.Fatalf("got=%v", Level())
	}
	SetLevel("nonsense")
	if Level() != zapcore.InfoLevel {
		t.Fatalf("got=%v", Level())
	}
}
