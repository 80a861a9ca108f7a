package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix        = "UNITCONV"
	defaultPrecision = 4
	maxPrecision     = 17

	keyPrecision = "precision"
	keyJSON      = "json"
	keyVerbose   = "verbose"
	keyConfig    = "config"
)

// config holds the resolved settings of one invocation. Flags win over
// environment variables, which win over the config file.
type config struct {
	Precision int  `mapstructure:"precision"`
	JSON      bool `mapstructure:"json"`
	Verbose   bool `mapstructure:"verbose"`
}

func addFlags(fs *pflag.FlagSet) {
	fs.IntP(keyPrecision, "p", defaultPrecision, "number of decimals in the converted amount")
	fs.Bool(keyJSON, false, "print the result as JSON; NaN and infinities are written as strings")
	fs.BoolP(keyVerbose, "v", false, "log diagnostics to stderr")
	fs.String(keyConfig, "", "path to a YAML config file")
}

// loadConfig merges the flags of fs with the environment and the optional
// config file.
func loadConfig(fs *pflag.FlagSet) (config, *viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyPrecision, defaultPrecision)

	if err := v.BindPFlags(fs); err != nil {
		return config{}, nil, err
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config{}, nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Precision < 0 || cfg.Precision > maxPrecision {
		return config{}, nil, fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, cfg.Precision)
	}

	return cfg, v, nil
}

// negativeAmountArgs lets a negative amount through flag parsing: when a
// positional argument looks like a negative number, the positionals are
// moved behind a "--" terminator after the flags.
func negativeAmountArgs(fs *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	negative := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if isNegativeNumber(arg) {
			negative = true
			positional = append(positional, arg)

			continue
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		if takesValue(fs, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")

	return append(out, positional...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)

	return err == nil
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = fs.Lookup(name)
	} else if len(arg) == 2 {
		f = fs.ShorthandLookup(arg[1:])
	}

	return f != nil && f.NoOptDefVal == ""
}
