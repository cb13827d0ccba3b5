package registry

import (
	"flag"

	"xdao.co/ceramic/storage"
)

// The in-memory backend ships with the registry itself; it has no
// configuration and exists mostly for tests and throwaway daemons.
func init() {
	MustRegister(Backend{
		Name:          "memory",
		Description:   "in-memory block store (contents lost on exit)",
		Usage:         UsageCLI | UsageDaemon,
		RegisterFlags: func(*flag.FlagSet) {},
		Open: func() (storage.BlockStore, func() error, error) {
			return storage.NewMemory(), nil, nil
		},
	})
}
