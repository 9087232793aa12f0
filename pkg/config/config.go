package config

import (
	"bytes"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rzdrail/rzdrail/pkg/util"
)

// Config holds the client settings. Values come from an optional YAML
// file, with RZDRAIL_* environment variables overriding individual
// fields.
type Config struct {
	HTTP HTTP `yaml:"http"`
	Poll Poll `yaml:"poll"`
}

type HTTP struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
	UserAgent      string `yaml:"user_agent"`
}

type Poll struct {
	IntervalMilliseconds int `yaml:"interval_milliseconds"`
	Attempts             int `yaml:"attempts"`
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			TimeoutSeconds: 30,
			MaxRetries:     3,
		},
		Poll: Poll{
			IntervalMilliseconds: 1500,
			Attempts:             3,
		},
	}
}

// Load reads the config file at path and applies the environment
// overrides. An empty path skips the file and yields the defaults.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		configYaml, err := os.ReadFile(path)
		if err != nil {
			return config, err
		}

		if err := yaml.NewDecoder(bytes.NewReader(configYaml)).Decode(&config); err != nil {
			return config, err
		}
	}

	config.applyEnvironment(util.GetEnvironmentVariables())

	return config, nil
}

func (c *Config) applyEnvironment(env map[string]string) {
	if userAgent := env["RZDRAIL_USER_AGENT"]; userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}

	overrideInt(env, "RZDRAIL_HTTP_TIMEOUT_SECONDS", &c.HTTP.TimeoutSeconds)
	overrideInt(env, "RZDRAIL_HTTP_MAX_RETRIES", &c.HTTP.MaxRetries)
	overrideInt(env, "RZDRAIL_POLL_INTERVAL_MILLISECONDS", &c.Poll.IntervalMilliseconds)
	overrideInt(env, "RZDRAIL_POLL_ATTEMPTS", &c.Poll.Attempts)
}

func overrideInt(env map[string]string, name string, target *int) {
	value, found := env[name]
	if !found {
		return
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("variable", name).Str("value", value).Msg("Ignoring non-numeric environment override")
		return
	}

	*target = parsed
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalMilliseconds) * time.Millisecond
}
