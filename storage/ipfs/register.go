package ipfs

import (
	"flag"
	"os"

	"xdao.co/ceramic/storage"
	"xdao.co/ceramic/storage/registry"
)

var (
	flagBin  string
	flagPath string
)

func init() {
	registry.MustRegister(registry.Backend{
		Name:        "ipfs",
		Description: "local Kubo repo via the ipfs CLI",
		Usage:       registry.UsageCLI | registry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagBin, "ipfs-bin", "", "Path to the ipfs binary (default: ipfs on PATH)")
			fs.StringVar(&flagPath, "ipfs-path", "", "IPFS repo directory (default: IPFS_PATH or ~/.ipfs)")
		},
		Open: func() (storage.BlockStore, func() error, error) {
			opts := Options{Bin: flagBin}
			if flagPath != "" {
				opts.Env = append(os.Environ(), "IPFS_PATH="+flagPath)
			}
			return New(opts), nil, nil
		},
	})
}
