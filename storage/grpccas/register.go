package grpccas

import (
	"flag"
	"fmt"
	"time"

	"xdao.co/ceramic/storage"
	"xdao.co/ceramic/storage/registry"
)

var (
	flagAddr    string
	flagTimeout time.Duration
)

// The grpc backend turns a remote serve-cas daemon into a local
// BlockStore. Daemons do not chain onto other daemons, so it is
// CLI-only.
func init() {
	registry.MustRegister(registry.Backend{
		Name:        "grpc",
		Description: "remote block store over gRPC",
		Usage:       registry.UsageCLI,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagAddr, "grpc-addr", "", "Address of a serve-cas daemon for the grpc backend")
			fs.DurationVar(&flagTimeout, "grpc-timeout", 10*time.Second, "Per-call timeout for the grpc backend")
		},
		Open: func() (storage.BlockStore, func() error, error) {
			if flagAddr == "" {
				return nil, nil, fmt.Errorf("grpccas: missing -grpc-addr")
			}
			client, err := Dial(flagAddr, DialOptions{Timeout: flagTimeout})
			if err != nil {
				return nil, nil, err
			}
			return client, client.Close, nil
		},
	})
}
