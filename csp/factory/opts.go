package factory

import (
	"fmt"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

type FactoryOpts struct {
	ProviderName string  `mapstructure:"default" json:"default" yaml:"Default"`
	SwOpts       *SwOpts `mapstructure:"SW,omitempty" json:"SW,omitempty" yaml:"SwOpts"`
}

func GetDefaultOpts() *FactoryOpts {
	return &FactoryOpts{
		ProviderName: "SW",
		SwOpts: &SwOpts{
			HashFamily: "SHA2",
			SecLevel:   256,

			Ephemeral: true,
		},
	}
}

func (o *FactoryOpts) FactoryName() string {
	return o.ProviderName
}

func InitFactories(config *FactoryOpts) error {
	factoriesInitOnce.Do(func() {
		if config == nil {
			config = GetDefaultOpts()
		}

		if config.ProviderName == "" {
			config.ProviderName = "SW"
		}

		if config.SwOpts == nil {
			config.SwOpts = GetDefaultOpts().SwOpts
		}

		cspMap = make(map[string]csp.CSP)

		if config.SwOpts != nil {
			f := &SWFactory{}
			err := initCSP(f, config)
			if err != nil {
				factoriesInitError = fmt.Errorf("[%s]", err)
			}
		}

		var ok bool
		defaultCSP, ok = cspMap[config.ProviderName]
		if !ok {
			factoriesInitError = fmt.Errorf("%s\nCould not find default `%s` CSP", factoriesInitError, config.ProviderName)
		}
	})

	return factoriesInitError
}

func GetCSPFromOpts(config *FactoryOpts) (csp.CSP, error) {
	var f CSPFactory
	switch config.ProviderName {
	case "SW":
		f = &SWFactory{}
	default:
		return nil, fmt.Errorf("Could not find CSP, no '%s' provider", config.ProviderName)
	}

	provider, err := f.Get(config)
	if err != nil {
		return nil, fmt.Errorf("Could not initialize CSP %s [%s]", f.Name(), err)
	}
	return provider, nil
}
