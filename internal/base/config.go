package base

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"
)

//go:embed config.example.toml
var exampleConf []byte

// Config holds the service settings. Each field is bound by the gjson path in
// its config tag.
type Config struct {
	Addr     string `config:"addr"`
	Debug    bool   `config:"debug"`
	LogLevel string `config:"log.level"`

	Driver       string `config:"database.driver"`
	DSN          string `config:"database.dsn"`
	MaxOpenConns int    `config:"database.max_open_conns"`
	MaxIdleConns int    `config:"database.max_idle_conns"`

	CacheSize int           `config:"cache.size"`
	CacheTTL  time.Duration `config:"cache.ttl"`
}

var (
	stringType   = reflect.TypeOf("")
	boolType     = reflect.TypeOf(false)
	intType      = reflect.TypeOf(0)
	durationType = reflect.TypeOf(time.Duration(0))
)

// DefaultConfig returns the settings from the embedded example config.
func DefaultConfig() *Config {
	var c Config
	if err := c.decodeTOML(exampleConf); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &c
}

// LoadConfig reads the file at path over the defaults. Files ending in .json
// are read as JSON, everything else as TOML.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidConfig, path)
		}
		err = c.decode(gjson.ParseBytes(data))
	} else {
		err = c.decodeTOML(data)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateConfigFile writes the embedded example config to path.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) decodeTOML(data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// gjson only reads JSON, so the TOML tree goes through a JSON round trip
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.decode(gjson.ParseBytes(raw))
}

func (c *Config) decode(g gjson.Result) error {
	var (
		v = reflect.ValueOf(c).Elem()
		t = v.Type()
	)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("config")
		if name == "" {
			continue
		}
		r := g.Get(name)
		if !r.Exists() {
			continue
		}
		switch field.Type {
		case stringType:
			v.Field(i).SetString(r.String())
		case boolType:
			v.Field(i).SetBool(r.Bool())
		case intType:
			if r.Type != gjson.Number {
				return fmt.Errorf("%w: %s must be a number", ErrInvalidConfig, name)
			}
			v.Field(i).SetInt(r.Int())
		case durationType:
			d, err := time.ParseDuration(r.String())
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
			}
			v.Field(i).SetInt(int64(d))
		default:
			panic("unsupported type")
		}
	}
	return nil
}
