package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	defaultConfigRelPath = "configs/conf.yml"
	// 环境变量前缀：HIGHLANDER_ARENA_SEED 覆盖 arena.seed
	envPrefix = "HIGHLANDER"
)

// Resolve 定位配置文件：
//  1. 传入 cfgName（相对/绝对路径）则优先使用；
//  2. 否则从当前目录开始向上查找 configs/conf.yml。
func Resolve(cfgName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cfgName != "" {
		if !filepath.IsAbs(cfgName) {
			cfgName = filepath.Join(curDir, cfgName)
		}
		if !fileExist(cfgName) {
			return "", fmt.Errorf("config file not exist, configPath=%v", cfgName)
		}
		return cfgName, nil
	}
	for dir := curDir; ; {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config file not exist, searched %s from: %s", defaultConfigRelPath, curDir)
		}
		dir = parent
	}
}

// Load 读取配置文件并解码到 out；out 中已有的值作为默认值保留。
func Load(cfgName string, out any) (*viper.Viper, error) {
	path, err := Resolve(cfgName)
	if err != nil {
		return nil, err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(v, out); err != nil {
		return nil, err
	}
	return v, nil
}

// Decode 支持 "250ms" 这类时长和逗号分隔的字符串列表（环境变量覆盖时常见）。
func Decode(v *viper.Viper, out any) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(out, hook); err != nil {
		return fmt.Errorf("viper unmarshal config: %w", err)
	}
	return nil
}

// Watch 监听配置文件变更，变更事件交给 onChange 自行解码。
func Watch(v *viper.Viper, onChange func(e fsnotify.Event)) {
	if v == nil || onChange == nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(e)
	})
	v.WatchConfig()
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
