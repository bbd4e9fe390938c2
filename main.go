package main

import (
	"encoding/pem"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ebfe/scard"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/peterbourgon/ff/v3"

	"github.com/gregLibert/asn1-explorer/pkg/piv"
	"github.com/gregLibert/asn1-explorer/pkg/render"
	"github.com/gregLibert/asn1-explorer/pkg/view"
)

func main() {
	fs := flag.NewFlagSet("asn1-explorer", flag.ExitOnError)
	var (
		flFile      = fs.String("file", "-", "DER or PEM input file ('-' reads stdin)")
		flCard      = fs.Bool("card", false, "read the certificate from a PIV smart card instead of a file")
		flSlot      = fs.String("slot", "9a", "PIV key slot to read (9a, 9c, 9d, 9e)")
		flNoContent = fs.Bool("no_content", false, "decode structure only, without primitive values")
		flNoEncap   = fs.Bool("no_encapsulated", false, "do not decode payloads encapsulated in octet/bit strings")
		flMaxDepth  = fs.Int("max_depth", view.DefaultMaxDepth, "maximum display depth")
		flDump      = fs.Bool("dump", false, "print a hex dump of the input before the tree")
		flDebug     = fs.Bool("debug", false, "enable debug logging")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("ASN1_EXPLORER")); err != nil {
		fmt.Fprintf(os.Stderr, "flag parsing failed: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if *flDebug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var (
		data []byte
		err  error
	)
	if *flCard {
		data, err = readFromCard(logger, *flSlot)
	} else {
		data, err = loadInput(*flFile)
	}
	if err != nil {
		level.Error(logger).Log("msg", "could not obtain input", "err", err)
		os.Exit(1)
	}

	if *flDump {
		fmt.Println(">> Input dump:")
		fmt.Println(render.HexDump(data))
		fmt.Println()
	}

	opts := view.DefaultOptions()
	opts.ReadContent = !*flNoContent
	opts.ParseEncapsulated = !*flNoEncap
	opts.MaxDepth = *flMaxDepth
	opts.Logger = logger

	forest := view.Build(data, opts)
	for _, root := range forest {
		printNode(root)
	}

	stats := view.Summarize(forest)
	fmt.Printf("\n>> %d nodes, max depth %d, %d encapsulated payloads decoded\n",
		stats.Nodes, stats.MaxDepth, stats.Encapsulated)
}

// printNode writes one display line per node, indented by depth.
func printNode(n *view.DisplayNode) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", n.Depth), n.Label)
	for _, child := range n.Children {
		printNode(child)
	}
}

// loadInput reads the file (or stdin for "-") and unwraps a PEM envelope
// when it finds one, so both raw DER and PEM certificates work.
func loadInput(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if strings.HasPrefix(strings.TrimSpace(string(data)), "-----BEGIN") {
		block, _ := pem.Decode(data)
		if block == nil {
			return nil, fmt.Errorf("input looks like PEM but no block could be decoded")
		}
		return block.Bytes, nil
	}

	return data, nil
}

// readFromCard connects to the first PC/SC reader and pulls the certificate
// out of the requested PIV slot.
func readFromCard(logger log.Logger, slotName string) ([]byte, error) {
	slot, err := piv.ParseSlot(slotName)
	if err != nil {
		return nil, err
	}

	ctx, card, err := connectToCard(logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ctx.Release(); err != nil {
			level.Warn(logger).Log("msg", "failed to release context", "err", err)
		}
	}()
	defer func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			level.Warn(logger).Log("msg", "failed to disconnect card", "err", err)
		}
	}()

	client := piv.NewClient(card, logger)

	props, err := client.SelectApplication()
	if err != nil {
		return nil, err
	}
	if props != nil {
		fmt.Println(props.Describe())
		fmt.Println()
	}

	cert, err := client.ReadCertificate(slot)
	if err != nil {
		return nil, err
	}

	fmt.Printf(">> Read %d certificate bytes from slot %s\n\n", len(cert), slot)
	return cert, nil
}

// connectToCard handles the PC/SC context establishment and reader connection.
func connectToCard(logger log.Logger) (*scard.Context, *scard.Card, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, nil, fmt.Errorf("establishing PC/SC context: %w", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil || len(readers) == 0 {
		if relErr := ctx.Release(); relErr != nil {
			level.Warn(logger).Log("msg", "failed to release context during error handling", "err", relErr)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("listing readers: %w", err)
		}
		return nil, nil, fmt.Errorf("no smart card reader found")
	}

	fmt.Printf(">> Using reader: %s\n", readers[0])

	// Force T=0 or T=1 to avoid "Parameter Incorrect" errors (Error 57)
	card, err := ctx.Connect(readers[0], scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		if relErr := ctx.Release(); relErr != nil {
			level.Warn(logger).Log("msg", "failed to release context during error handling", "err", relErr)
		}
		return nil, nil, fmt.Errorf("connecting to card: %w", err)
	}

	return ctx, card, nil
}
