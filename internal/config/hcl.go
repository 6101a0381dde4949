package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"unit-convert/core/types"
)

// hclConfigFile mirrors Config for HCL decoding. Every attribute and block
// is optional so a file only needs to name the settings it overrides.
type hclConfigFile struct {
	Version     *string               `hcl:"version,optional"`
	Precision   *int                  `hcl:"precision,optional"`
	Temperature *hclTemperatureConfig `hcl:"temperature,block"`
	Output      *hclOutputConfig      `hcl:"output,block"`
	Logging     *hclLoggingConfig     `hcl:"logging,block"`
}

type hclTemperatureConfig struct {
	DefaultFrom *string `hcl:"default_from,optional"`
	DefaultTo   *string `hcl:"default_to,optional"`
}

type hclOutputConfig struct {
	Format *string `hcl:"format,optional"`
}

type hclLoggingConfig struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

// decodeHCL parses an HCL config file and applies the attributes it sets on top of config.
//
//	precision = 3
//	temperature {
//	  default_from = "K"
//	  default_to   = "C"
//	}
func decodeHCL(filename string, src []byte, config *Config) error {
	var file hclConfigFile
	if err := hclsimple.Decode(filename, src, nil, &file); err != nil {
		return err
	}

	setString(&config.Version, file.Version)
	if file.Precision != nil {
		config.Precision = *file.Precision
	}
	if t := file.Temperature; t != nil {
		if t.DefaultFrom != nil {
			config.Temperature.DefaultFrom = types.Unit(*t.DefaultFrom)
		}
		if t.DefaultTo != nil {
			config.Temperature.DefaultTo = types.Unit(*t.DefaultTo)
		}
	}
	if o := file.Output; o != nil {
		setString(&config.Output.Format, o.Format)
	}
	if l := file.Logging; l != nil {
		setString(&config.Logging.Level, l.Level)
		setString(&config.Logging.Format, l.Format)
		setString(&config.Logging.Output, l.Output)
		if l.Development != nil {
			config.Logging.Development = *l.Development
		}
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
