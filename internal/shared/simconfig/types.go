package simconfig

import "time"

type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	Arena      ArenaConfig      `yaml:"arena" mapstructure:"arena"`
	Attributes AttributesConfig `yaml:"attributes" mapstructure:"attributes"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type ArenaConfig struct {
	Arenas         int           `yaml:"arenas" mapstructure:"arenas"` // 启动时创建的竞技场数量
	XLimit         int           `yaml:"x_limit" mapstructure:"x_limit"`
	YLimit         int           `yaml:"y_limit" mapstructure:"y_limit"`
	Warriors       int           `yaml:"warriors" mapstructure:"warriors"`
	Names          []string      `yaml:"names" mapstructure:"names"`
	MoveOffsetX    int           `yaml:"move_offset_x" mapstructure:"move_offset_x"`
	MoveOffsetY    int           `yaml:"move_offset_y" mapstructure:"move_offset_y"`
	SanctuaryRatio float64       `yaml:"sanctuary_ratio" mapstructure:"sanctuary_ratio"`
	Seed           int64         `yaml:"seed" mapstructure:"seed"`                   // 0 表示每次随机
	TickInterval   time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"` // 0 表示不自动推进
	AskTimeout     time.Duration `yaml:"ask_timeout" mapstructure:"ask_timeout"`
}

type AttributesConfig struct {
	MinAge       int `yaml:"min_age" mapstructure:"min_age"`
	MaxAge       int `yaml:"max_age" mapstructure:"max_age"`
	MinAttribute int `yaml:"min_attribute" mapstructure:"min_attribute"`
	MaxAttribute int `yaml:"max_attribute" mapstructure:"max_attribute"`
}
