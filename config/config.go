package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lollipopkit/kale/compiler/parser"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJson = errors.New("config: invalid json")

	home = os.Getenv("HOME")
)

// Config is read from a JSON file such as
//
//	{
//	  "debug": true,
//	  "history": "/tmp/kale_history.json",
//	  "binops": {">": 10, "%": 40, "<": 0}
//	}
type Config struct {
	Debug   bool
	History string
	// Binops extends or overrides the default operator table.
	Binops map[byte]int
}

func Default() *Config {
	return &Config{
		History: filepath.Join(home, ".config", "kale_history.json"),
		Binops:  map[byte]int{},
	}
}

// Path is $KALE_CONFIG, or ~/.config/kale.json when unset.
func Path() string {
	if p := os.Getenv("KALE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home, ".config", "kale.json")
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJson
	}
	cfg := Default()
	root := gjson.ParseBytes(data)

	cfg.Debug = root.Get("debug").Bool()
	if history := root.Get("history"); history.Exists() {
		cfg.History = history.String()
	}

	var binopErr error
	root.Get("binops").ForEach(func(key, value gjson.Result) bool {
		op := key.String()
		if len(op) != 1 {
			binopErr = fmt.Errorf("config: binop %q must be a single character", op)
			return false
		}
		if value.Type != gjson.Number {
			binopErr = fmt.Errorf("config: precedence of %q must be a number", op)
			return false
		}
		cfg.Binops[op[0]] = int(value.Int())
		return true
	})
	if binopErr != nil {
		return nil, binopErr
	}
	return cfg, nil
}

// Precedence builds the operator table the parser should use.
func (c *Config) Precedence() *parser.Precedence {
	return parser.NewPrecedence(c.Binops)
}
