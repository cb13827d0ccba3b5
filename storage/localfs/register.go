package localfs

import (
	"flag"
	"fmt"

	"xdao.co/ceramic/storage"
	"xdao.co/ceramic/storage/registry"
)

var flagDir string

func init() {
	registry.MustRegister(registry.Backend{
		Name:        "localfs",
		Description: "filesystem block store (one file per block)",
		Usage:       registry.UsageCLI | registry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagDir, "localfs-dir", "", "Block store directory for the localfs backend")
		},
		Open: func() (storage.BlockStore, func() error, error) {
			if flagDir == "" {
				return nil, nil, fmt.Errorf("localfs: missing -localfs-dir")
			}
			store, err := New(flagDir)
			if err != nil {
				return nil, nil, err
			}
			return store, nil, nil
		},
	})
}
