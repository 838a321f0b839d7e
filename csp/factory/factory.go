package factory

import (
	"fmt"
	"sync"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/logging"
)

const LOGTABLE_CSP string = "csp"

var (
	defaultCSP csp.CSP

	bootCSP csp.CSP

	cspMap map[string]csp.CSP

	factoriesInitOnce sync.Once
	bootCSPInitOnce   sync.Once

	factoriesInitError error

	logger = logging.GetLogIns()
)

type CSPFactory interface {
	Name() string

	Get(opts *FactoryOpts) (csp.CSP, error)
}

// GetDefault returns the provider selected by InitFactories. Before
// initialization it falls back to an ephemeral software provider.
func GetDefault() csp.CSP {
	if defaultCSP == nil {
		bootCSPInitOnce.Do(func() {
			var err error
			f := &SWFactory{}
			bootCSP, err = f.Get(GetDefaultOpts())
			if err != nil {
				panic("CSP Internal error, failed initialization with GetDefaultOpts!")
			}
		})
		return bootCSP
	}
	return defaultCSP
}

func GetCSP(name string) (csp.CSP, error) {
	provider, ok := cspMap[name]
	if !ok {
		return nil, fmt.Errorf("Could not find CSP, no '%s' provider", name)
	}
	return provider, nil
}

func initCSP(f CSPFactory, config *FactoryOpts) error {
	provider, err := f.Get(config)
	if err != nil {
		return fmt.Errorf("Could not initialize CSP %s [%s]", f.Name(), err)
	}

	logger.Debugf(LOGTABLE_CSP, "Initialize CSP [%s]", f.Name())
	cspMap[f.Name()] = provider
	return nil
}
