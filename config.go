package ogum

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _ogumconfig{}
)

// _ogumconfig is a "hidden" struct, just use `ogumConfig`
type _ogumconfig struct {
	outputDir string
	materials map[string]Params
}

// ogumConfig returns the ogum configuration, loading conf.toml from the
// directory named by the OGUM_CONFIG environment variable on first use.
func ogumConfig() _ogumconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("OGUM_CONFIG")
	if confPath == "" {
		panic("environment variable `OGUM_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	outputDir := viper.GetString("general.output_path")
	materials := make(map[string]Params)
	for name := range viper.GetStringMap("materials") {
		key := "materials." + name
		materials[strings.ToLower(name)] = Params{
			Ea: viper.GetFloat64(key + ".ea"),
			A:  viper.GetFloat64(key + ".a"),
			N:  viper.GetFloat64(key + ".n"),
		}
	}

	cfgLoaded = true
	config = _ogumconfig{outputDir: outputDir, materials: materials}
	return config
}

// Material returns the configured kinetic parameters for a named material.
func Material(name string) (Params, error) {
	p, found := ogumConfig().materials[strings.ToLower(name)]
	if !found {
		return Params{}, newValidationError("material %q is not in the configuration", name)
	}
	if err := p.Valid(); err != nil {
		return Params{}, err
	}
	return p, nil
}
