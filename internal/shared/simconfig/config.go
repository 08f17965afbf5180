package simconfig

import (
	"time"

	"Highlander/internal/shared/config"
	"Highlander/modules/kit/errx"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Default 是没有配置文件覆盖时的取值：50x50 棋盘、12 名战士、每 50ms 一回合。
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", MaxSize: 100, MaxBackups: 3, MaxAge: 7},
		HTTPServer: HTTPServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Arena: ArenaConfig{
			Arenas:         1,
			XLimit:         50,
			YLimit:         50,
			Warriors:       12,
			MoveOffsetX:    1,
			MoveOffsetY:    1,
			SanctuaryRatio: 0.01,
			TickInterval:   50 * time.Millisecond,
			AskTimeout:     3 * time.Second,
		},
		Attributes: AttributesConfig{
			MinAge:       25,
			MaxAge:       2000,
			MinAttribute: 1,
			MaxAttribute: 200,
		},
	}
}

// Load 在默认值之上叠加配置文件和 HIGHLANDER_* 环境变量，并做合法性校验。
func Load(cfgName string) (Config, *viper.Viper, error) {
	conf := Default()
	v, err := config.Load(cfgName, &conf)
	if err != nil {
		return Config{}, nil, err
	}
	if err := conf.Validate(); err != nil {
		return Config{}, nil, err
	}
	return conf, v, nil
}

// Watch 配置文件变更时重新解码；解码或校验失败时把错误交给回调，旧配置继续生效。
func Watch(v *viper.Viper, onChange func(Config, error)) {
	config.Watch(v, func(fsnotify.Event) {
		conf := Default()
		if err := config.Decode(v, &conf); err != nil {
			onChange(Config{}, err)
			return
		}
		if err := conf.Validate(); err != nil {
			onChange(Config{}, err)
			return
		}
		onChange(conf, nil)
	})
}

func (c Config) Validate() error {
	a := c.Arena
	switch {
	case a.XLimit < 0 || a.YLimit < 0:
		return invalid("arena.x_limit/y_limit", []int{a.XLimit, a.YLimit})
	case a.Warriors <= 0:
		return invalid("arena.warriors", a.Warriors)
	case a.Arenas <= 0:
		return invalid("arena.arenas", a.Arenas)
	case a.SanctuaryRatio < 0:
		return invalid("arena.sanctuary_ratio", a.SanctuaryRatio)
	case a.TickInterval < 0:
		return invalid("arena.tick_interval", a.TickInterval.String())
	}
	at := c.Attributes
	if at.MaxAge <= at.MinAge || at.MaxAttribute <= at.MinAttribute || at.MinAttribute <= 0 {
		return invalid("attributes", at)
	}
	return nil
}

func invalid(field string, value any) error {
	return errx.ErrInvalidParam.WithDataMap(map[string]any{"field": field, "value": value})
}
