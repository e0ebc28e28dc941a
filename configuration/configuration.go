package configuration

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/jamieabc/stream-monitor/alert"
	"github.com/jamieabc/stream-monitor/engine"
)

type Configuration interface {
	Data() *ConfigurationImpl
	AlertCooldown() time.Duration
	EngineConfig() engine.Config
	InfluxDBConfig() InfluxDBConfig
	LogConfig() logger.Configuration
	ProducerConfig() ProducerConfig
	SlackConfig() SlackConfig
	String() string
}

type ConfigurationImpl struct {
	SourcePath              string               `gluamapper:"source_path" yaml:"source_path"`
	WindowSize              int                  `gluamapper:"window_size" yaml:"window_size"`
	ReportEvery             int                  `gluamapper:"report_every" yaml:"report_every"`
	PollIntervalMillisecond int                  `gluamapper:"poll_interval_millisecond" yaml:"poll_interval_millisecond"`
	Patterns                []string             `gluamapper:"patterns" yaml:"patterns"`
	DisableAlert            bool                 `gluamapper:"disable_alert" yaml:"disable_alert"`
	AlertCooldownSecond     int                  `gluamapper:"alert_cooldown_second" yaml:"alert_cooldown_second"`
	Logging                 logger.Configuration `gluamapper:"logging" yaml:"logging"`
	Slack                   SlackConfig          `gluamapper:"slack" yaml:"slack"`
	InfluxDB                InfluxDBConfig       `gluamapper:"influxdb" yaml:"influxdb"`
	Producer                ProducerConfig       `gluamapper:"producer" yaml:"producer"`
}

type SlackConfig struct {
	Token     string `gluamapper:"token" yaml:"token"`
	ChannelID string `gluamapper:"channel_id" yaml:"channel_id"`
}

type InfluxDBConfig struct {
	Address  string `gluamapper:"address" yaml:"address"`
	User     string `gluamapper:"user" yaml:"user"`
	Password string `gluamapper:"password" yaml:"password"`
	Database string `gluamapper:"database" yaml:"database"`
}

type ProducerConfig struct {
	IntervalSecond int   `gluamapper:"interval_second" yaml:"interval_second"`
	Seed           int64 `gluamapper:"seed" yaml:"seed"`
}

const (
	defaultSourcePath             = "log/stream.log"
	defaultAlertCooldownSecond    = 0
	defaultProducerIntervalSecond = 2
)

var (
	defaultLogging = logger.Configuration{
		Count:     10,
		Console:   false,
		Directory: "log",
		File:      "monitor.log",
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
		Size: 1048576,
	}
)

// Parse - parse configuration, lua by default, yaml when file ends with
// .yaml or .yml, relative paths are resolved from config file directory
func Parse(configFile string) (Configuration, error) {
	filePath, err := filepath.Abs(filepath.Clean(configFile))
	if nil != err {
		return nil, err
	}

	config := defaultConfiguration()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = parseYamlConfigurationFile(filePath, config)
	default:
		err = parseLuaConfigurationFile(filePath, config)
	}
	if nil != err {
		return nil, err
	}

	dir := filepath.Dir(filePath)
	config.SourcePath = ensureAbsolute(dir, config.SourcePath)
	config.Logging.Directory = ensureAbsolute(dir, config.Logging.Directory)

	return config, nil
}

func defaultConfiguration() *ConfigurationImpl {
	levels := make(map[string]string)
	for k, v := range defaultLogging.Levels {
		levels[k] = v
	}
	logging := defaultLogging
	logging.Levels = levels

	patterns := make([]string, len(alert.DefaultPhrases))
	copy(patterns, alert.DefaultPhrases)

	return &ConfigurationImpl{
		SourcePath:              defaultSourcePath,
		WindowSize:              engine.DefaultWindowSize,
		ReportEvery:             engine.DefaultReportEvery,
		PollIntervalMillisecond: int(engine.DefaultPollInterval / time.Millisecond),
		Patterns:                patterns,
		AlertCooldownSecond:     defaultAlertCooldownSecond,
		Logging:                 logging,
		Producer: ProducerConfig{
			IntervalSecond: defaultProducerIntervalSecond,
		},
	}
}

func ensureAbsolute(dir string, path string) string {
	if "" == path || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Data - return configuration
func (c *ConfigurationImpl) Data() *ConfigurationImpl {
	return c
}

// LogConfig - return log config
func (c *ConfigurationImpl) LogConfig() logger.Configuration {
	return c.Logging
}

// EngineConfig - return engine config
func (c *ConfigurationImpl) EngineConfig() engine.Config {
	config := engine.Config{
		SourcePath:   c.SourcePath,
		WindowSize:   c.WindowSize,
		ReportEvery:  c.ReportEvery,
		PollInterval: time.Duration(c.PollIntervalMillisecond) * time.Millisecond,
	}

	if !c.DisableAlert {
		config.Patterns = c.Patterns
	}

	return config
}

// AlertCooldown - duration same alert is not forwarded again
func (c *ConfigurationImpl) AlertCooldown() time.Duration {
	return time.Duration(c.AlertCooldownSecond) * time.Second
}

// SlackConfig - return slack config
func (c *ConfigurationImpl) SlackConfig() SlackConfig {
	return c.Slack
}

// InfluxDBConfig - return influx db config
func (c *ConfigurationImpl) InfluxDBConfig() InfluxDBConfig {
	return c.InfluxDB
}

// ProducerConfig - return producer config
func (c *ConfigurationImpl) ProducerConfig() ProducerConfig {
	return c.Producer
}

// String - configuration info
func (c *ConfigurationImpl) String() string {
	var str strings.Builder
	str.WriteString(fmt.Sprintf("source path: \t%s\n", c.SourcePath))
	str.WriteString(fmt.Sprintf("window size: \t%d\n", c.WindowSize))
	str.WriteString(fmt.Sprintf("report every: \t%d messages\n", c.ReportEvery))
	str.WriteString(fmt.Sprintf("poll interval: \t%d ms\n", c.PollIntervalMillisecond))
	if c.DisableAlert {
		str.WriteString("patterns: \tdisabled\n")
	} else {
		str.WriteString(fmt.Sprintf("patterns: \t%q\n", c.Patterns))
	}
	str.WriteString(fmt.Sprintf("alert cooldown: %d seconds\n", c.AlertCooldownSecond))
	str.WriteString(fmt.Sprintf("slack:\n\tchannel: \t%s\n\ttoken: \t%s\n", c.Slack.ChannelID, mask(c.Slack.Token)))
	str.WriteString(fmt.Sprintf(
		"influxdb:\n\taddress: \t%s\n\tdatabase: \t%s\n\tuser: \t%s\n\tpassword: \t%s\n",
		c.InfluxDB.Address,
		c.InfluxDB.Database,
		c.InfluxDB.User,
		mask(c.InfluxDB.Password),
	))
	str.WriteString(fmt.Sprintf("producer interval: %d seconds\n", c.Producer.IntervalSecond))
	str.WriteString(fmt.Sprintf("logging: %+v\n", c.Logging))
	return str.String()
}

func mask(secret string) string {
	if "" == secret {
		return ""
	}
	return "****"
}
