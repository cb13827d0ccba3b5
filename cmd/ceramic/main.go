package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"xdao.co/ceramic/event"
	"xdao.co/ceramic/httpapi"
	"xdao.co/ceramic/loader"
	"xdao.co/ceramic/storage/bundle"
	"xdao.co/ceramic/storage/grpccas"
	"xdao.co/ceramic/storage/registry"
	"xdao.co/ceramic/streamid"

	_ "xdao.co/ceramic/storage/ipfs"
	_ "xdao.co/ceramic/storage/localfs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "stream-id":
		return cmdStreamID(args[1:], out, errOut)
	case "load":
		return cmdLoad(args[1:], out, errOut)
	case "export":
		return cmdExport(args[1:], out, errOut)
	case "import":
		return cmdImport(args[1:], out, errOut)
	case "serve-cas":
		return cmdServeCAS(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "ceramic: event log and stream state CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ceramic decode --cid <CID> <block-file>")
	fmt.Fprintln(w, "  ceramic stream-id <streamid>")
	fmt.Fprintln(w, "  ceramic stream-id --type <n> --cid <genesis CID>")
	fmt.Fprintln(w, "  ceramic load --endpoint <url> [--tip <CID>] [--verbose] <streamid>")
	fmt.Fprintln(w, "  ceramic export --endpoint <url> [-o <file>] <streamid>")
	fmt.Fprintln(w, "  ceramic import [--backend <name>] [backend flags] <bundle-file>")
	fmt.Fprintln(w, "  ceramic serve-cas --listen <addr> --backend <name> [backend flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - decode verifies the block bytes against the given CID")
	fmt.Fprintln(w, "  - load folds the stream log fetched from a Ceramic HTTP API node")
	fmt.Fprintln(w, "  - export writes the full event log as a deterministic TAR bundle")
	fmt.Fprintln(w, "  - import stores a bundle's blocks and folds the stream offline")
	fmt.Fprintln(w, "  - serve-cas exposes a block store backend over gRPC")
	fmt.Fprintln(w, "  - use --list-backends on import/serve-cas to see available backends")
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var cidText string
	fs.StringVar(&cidText, "cid", "", "CID of the block (determines the codec)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if cidText == "" {
		fmt.Fprintln(errOut, "missing --cid")
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ceramic decode --cid <CID> <block-file>")
		return 2
	}
	id, err := cid.Decode(cidText)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --cid: %v\n", err)
		return 2
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(fs.Arg(0)), err)
		return 1
	}
	ev, err := event.Decode(id, data)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	summary, err := summarizeEvent(ev)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	return writeJSON(out, errOut, summary)
}

type eventSummary struct {
	Cid     string          `json:"cid"`
	LogType string          `json:"logType"`
	JWS     *event.JWS      `json:"jws,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Anchor  *anchorSummary  `json:"anchor,omitempty"`
}

type anchorSummary struct {
	ID    string `json:"id"`
	Prev  string `json:"prev"`
	Proof string `json:"proof"`
	Path  string `json:"path"`
}

var logTypeNames = map[event.LogType]string{
	event.LogGenesis: "genesis",
	event.LogSigned:  "signed",
	event.LogAnchor:  "anchor",
}

func summarizeEvent(ev *event.Event) (*eventSummary, error) {
	summary := &eventSummary{
		Cid:     ev.Cid.String(),
		LogType: logTypeNames[ev.LogType()],
	}
	switch value := ev.Value.(type) {
	case *event.SignedValue:
		summary.JWS = &value.JWS
		if value.LinkedBlock != nil {
			payload, err := value.Payload()
			if err != nil {
				return nil, err
			}
			summary.Payload = payload.Data
		}
	case *event.AnchorValue:
		summary.Anchor = &anchorSummary{
			ID:    value.ID.String(),
			Prev:  value.Prev.String(),
			Proof: value.Proof.String(),
			Path:  value.Path,
		}
	}
	return summary, nil
}

func writeJSON(out io.Writer, errOut io.Writer, v any) int {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	return 0
}

func cmdStreamID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("stream-id", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var streamType uint64
	var genesisText string
	fs.Uint64Var(&streamType, "type", uint64(streamid.ModelInstanceDocument), "Stream type")
	fs.StringVar(&genesisText, "cid", "", "Genesis commit CID (build mode)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Build mode: derive the stream id from a genesis CID.
	if genesisText != "" {
		if fs.NArg() != 0 {
			fmt.Fprintln(errOut, "usage: ceramic stream-id --type <n> --cid <genesis CID>")
			return 2
		}
		genesis, err := cid.Decode(genesisText)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --cid: %v\n", err)
			return 2
		}
		id, err := streamid.New(streamid.Type(streamType), genesis)
		if err != nil {
			fmt.Fprintf(errOut, "stream-id: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, id)
		return 0
	}

	// Parse mode: break a stream id into its parts.
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ceramic stream-id <streamid>")
		return 2
	}
	id, err := streamid.FromString(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid stream id: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "type:    %d (%s)\n", uint64(id.Type), id.Type)
	fmt.Fprintf(out, "genesis: %s\n", id.Cid)
	return 0
}

func cmdLoad(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var endpoint string
	var tipText string
	var timeout time.Duration
	var verbose bool
	fs.StringVar(&endpoint, "endpoint", "http://localhost:7007", "Ceramic HTTP API endpoint")
	fs.StringVar(&tipText, "tip", "", "Fold only up to this commit CID")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	fs.BoolVar(&verbose, "verbose", false, "Log requests to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ceramic load --endpoint <url> [--tip <CID>] <streamid>")
		return 2
	}
	streamID, err := streamid.FromString(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid stream id: %v\n", err)
		return 2
	}
	tip := cid.Undef
	if tipText != "" {
		tip, err = cid.Decode(tipText)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --tip: %v\n", err)
			return 2
		}
	}

	log, cleanup, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintf(errOut, "logger: %v\n", err)
		return 1
	}
	defer cleanup()

	client, err := httpapi.New(endpoint, httpapi.Options{Logger: log})
	if err != nil {
		fmt.Fprintf(errOut, "endpoint: %v\n", err)
		return 2
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	state, err := loader.New(client, loader.Options{Logger: log}).LoadStream(ctx, streamID, tip)
	if err != nil {
		fmt.Fprintf(errOut, "load: %v\n", err)
		return 1
	}
	return writeJSON(out, errOut, state)
}

func newLogger(verbose bool) (*zap.Logger, func(), error) {
	if !verbose {
		return nil, func() {}, nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

func cmdExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var endpoint string
	var output string
	var timeout time.Duration
	fs.StringVar(&endpoint, "endpoint", "http://localhost:7007", "Ceramic HTTP API endpoint")
	fs.StringVar(&output, "o", "", "Output file (default: stdout)")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ceramic export --endpoint <url> [-o <file>] <streamid>")
		return 2
	}
	streamID, err := streamid.FromString(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid stream id: %v\n", err)
		return 2
	}

	client, err := httpapi.New(endpoint, httpapi.Options{})
	if err != nil {
		fmt.Fprintf(errOut, "endpoint: %v\n", err)
		return 2
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	events, err := client.LoadEvents(ctx, streamID, cid.Undef)
	if err != nil {
		fmt.Fprintf(errOut, "load events: %v\n", err)
		return 1
	}

	dest := out
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(errOut, "create %s: %v\n", output, err)
			return 1
		}
		defer f.Close()
		dest = f
	}
	if err := bundle.Export(dest, streamID, events); err != nil {
		fmt.Fprintf(errOut, "export: %v\n", err)
		return 1
	}
	return 0
}

func cmdImport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var backend string
	var listBackends bool
	fs.StringVar(&backend, "backend", "memory", "Block store backend name")
	fs.BoolVar(&listBackends, "list-backends", false, "List available backends and exit")
	registry.RegisterFlags(fs, registry.UsageCLI)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if listBackends {
		printBackends(out, registry.UsageCLI)
		return 0
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ceramic import [--backend <name>] <bundle-file>")
		return 2
	}

	blocks, closeFn, err := registry.Open(backend, registry.UsageCLI)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "open %s: %v\n", fs.Arg(0), err)
		return 1
	}
	defer f.Close()

	ctx := context.Background()
	streamID, tip, err := bundle.Import(ctx, f, blocks)
	if err != nil {
		fmt.Fprintf(errOut, "import: %v\n", err)
		return 1
	}
	state, err := loader.New(nil, loader.Options{}).LoadFromBlocks(ctx, streamID, tip, blocks)
	if err != nil {
		fmt.Fprintf(errOut, "fold: %v\n", err)
		return 1
	}
	fmt.Fprintf(errOut, "imported %s at tip %s\n", streamID, tip)
	return writeJSON(out, errOut, state)
}

func cmdServeCAS(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("serve-cas", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var listen string
	var backend string
	var listBackends bool
	fs.StringVar(&listen, "listen", "127.0.0.1:7777", "Listen address")
	fs.StringVar(&backend, "backend", "localfs", "Block store backend name")
	fs.BoolVar(&listBackends, "list-backends", false, "List available backends and exit")
	registry.RegisterFlags(fs, registry.UsageDaemon)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if listBackends {
		printBackends(out, registry.UsageDaemon)
		return 0
	}

	blocks, closeFn, err := registry.Open(backend, registry.UsageDaemon)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	lis, err := net.Listen("tcp", listen)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpccas.RegisterBlockStoreServer(s, &grpccas.Server{Blocks: blocks})

	fmt.Fprintf(errOut, "ceramic serve-cas listening on %s (backend=%s)\n", lis.Addr().String(), backend)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}

func printBackends(out io.Writer, usage registry.Usage) {
	for _, b := range registry.List(usage) {
		if b.Description == "" {
			fmt.Fprintf(out, "%s\n", b.Name)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", b.Name, b.Description)
	}
}
