// Command steganos hides bits or short messages in plain-text files and
// recovers them.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/zeebo/blake3"

	"github.com/arloliu/steganos"
	"github.com/arloliu/steganos/codec"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/internal/logging"
	"github.com/arloliu/steganos/payload"
)

const version = "0.1.0"

// CLI defines the command-line interface for steganos.
type CLI struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Capacity     CapacityCmd     `cmd:"" help:"Print how many bits a carrier can hold"`
	Branchpoints BranchpointsCmd `cmd:"" help:"List the branchpoints of a carrier"`
	Fingerprint  FingerprintCmd  `cmd:"" help:"Print the fingerprint of a carrier"`
	Encode       EncodeCmd       `cmd:"" help:"Hide bits or a message in a carrier"`
	Decode       DecodeCmd       `cmd:"" help:"Recover bits or a message from an encoded text"`
	Version      VersionCmd      `cmd:"" help:"Print version information"`
}

// AfterApply configures logging once flags are parsed.
func (c *CLI) AfterApply(ctx *kong.Context) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(ctx.Stderr, level, logFormat)

	return nil
}

// carrier is a loaded original text.
type carrier struct {
	path string
	text string
}

func loadCarrier(path string) (carrier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return carrier{}, fmt.Errorf("failed to read carrier: %w", err)
	}
	c := carrier{path: path, text: string(data)}
	logging.Carrier(path, steganos.CarrierID(c.text), c.fingerprint(), steganos.BitCapacity(c.text))

	return c, nil
}

// fingerprint is the BLAKE3-256 digest of the carrier, hex encoded.
func (c carrier) fingerprint() string {
	sum := blake3.Sum256([]byte(c.text))
	return hex.EncodeToString(sum[:])
}

// CapacityCmd prints the capacity of a carrier.
type CapacityCmd struct {
	Path string `arg:"" help:"Carrier text file" type:"existingfile"`
}

func (c *CapacityCmd) Run(ctx *kong.Context) error {
	cr, err := loadCarrier(c.Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "bits: %d\n", steganos.BitCapacity(cr.text))
	fmt.Fprintf(ctx.Stdout, "message bytes: %d\n", steganos.MessageCapacity(cr.text))

	return nil
}

// BranchpointsCmd lists every branchpoint of a carrier in bit order.
type BranchpointsCmd struct {
	Path string `arg:"" help:"Carrier text file" type:"existingfile"`
}

func (c *BranchpointsCmd) Run(ctx *kong.Context) error {
	cr, err := loadCarrier(c.Path)
	if err != nil {
		return err
	}
	for i, bp := range steganos.GenerateBranchpoints(cr.text) {
		edits := make([]string, len(bp.Edits))
		for j, e := range bp.Edits {
			edits[j] = e.String()
		}
		fmt.Fprintf(ctx.Stdout, "%d\t%s\t%s\t%s\n", i, bp.Scope, bp.Pattern, strings.Join(edits, " "))
	}

	return nil
}

// FingerprintCmd prints the identifiers of a carrier.
type FingerprintCmd struct {
	Path string `arg:"" help:"Carrier text file" type:"existingfile"`
}

func (c *FingerprintCmd) Run(ctx *kong.Context) error {
	cr, err := loadCarrier(c.Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "blake3: %s\n", cr.fingerprint())
	fmt.Fprintf(ctx.Stdout, "id: %016x\n", steganos.CarrierID(cr.text))

	return nil
}

// EncodeCmd hides bits or a message in a carrier.
type EncodeCmd struct {
	Carrier     string `required:"" help:"Carrier text file" type:"existingfile"`
	Bits        string `xor:"input" required:"" help:"Bit string of 0 and 1"`
	Message     string `xor:"input" required:"" help:"Message to hide"`
	Compression string `default:"none" enum:"none,zstd,s2,lz4,xz" help:"Message compression (none, zstd, s2, lz4, xz)"`
	Cyclic      bool   `help:"Repeat the bits to fill the carrier"`
	Output      string `short:"o" help:"Write the encoded text to this file instead of stdout" type:"path"`
}

func (c *EncodeCmd) Run(ctx *kong.Context) error {
	start := time.Now()
	cr, err := loadCarrier(c.Carrier)
	if err != nil {
		return err
	}

	var encoded string
	if c.Message != "" {
		if c.Cyclic {
			return errors.New("--cyclic cannot be combined with --message")
		}
		comp, ok := format.ParseCompression(c.Compression)
		if !ok {
			return fmt.Errorf("unknown compression %q", c.Compression)
		}
		encoded, err = steganos.HideMessage([]byte(c.Message), cr.text, payload.WithCompression(comp))
	} else {
		var bits format.Bits
		if bits, err = format.ParseBits(c.Bits); err != nil {
			return err
		}
		encoded, err = steganos.Encode(bits, cr.text, codec.WithCyclicFill(c.Cyclic))
	}
	if err != nil {
		logging.OperationError("encode", err, "path", cr.path)
		return err
	}

	if err := writeOutput(ctx.Stdout, c.Output, encoded); err != nil {
		return err
	}
	logging.Operation("encode", time.Since(start), "path", cr.path)

	return nil
}

// DecodeCmd recovers bits or a message from an encoded text.
type DecodeCmd struct {
	Carrier string `required:"" help:"Original carrier text file" type:"existingfile"`
	Encoded string `required:"" help:"Encoded text file, whole or an excerpt" type:"existingfile"`
	Window  string `help:"Treat the encoded text as an excerpt of the original span START:END; negative offsets count from the end"`
	Partial bool   `help:"Treat the encoded text as an excerpt from anywhere in the original"`
	Message bool   `help:"Decode a message instead of raw bits"`
}

func (c *DecodeCmd) Run(ctx *kong.Context) error {
	start := time.Now()
	cr, err := loadCarrier(c.Carrier)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(c.Encoded)
	if err != nil {
		return fmt.Errorf("failed to read encoded text: %w", err)
	}
	encoded := string(data)

	var bits format.Bits
	if c.Window != "" || c.Partial {
		w := codec.Anywhere
		if c.Window != "" {
			if w, err = parseWindow(c.Window); err != nil {
				return err
			}
		}
		bits, err = steganos.DecodePartialText(encoded, cr.text, w)
	} else {
		bits, err = steganos.DecodeFullText(encoded, cr.text)
	}
	if err != nil {
		logging.OperationError("decode", err, "path", cr.path)
		return err
	}

	if c.Message {
		msg, err := payload.Unpack(bits)
		if err != nil {
			logging.OperationError("decode", err, "path", cr.path)
			return err
		}
		fmt.Fprintln(ctx.Stdout, string(msg))
	} else {
		fmt.Fprintln(ctx.Stdout, bits.String())
	}
	logging.Operation("decode", time.Since(start), "path", cr.path, "bits", len(bits))

	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "steganos version %s\n", version)
	return nil
}

func parseWindow(s string) (codec.Window, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return codec.Window{}, errors.New("window must be START:END")
	}
	start, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return codec.Window{}, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return codec.Window{}, fmt.Errorf("invalid window end: %w", err)
	}

	return codec.Window{Start: start, End: end}, nil
}

func writeOutput(stdout io.Writer, path, text string) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("steganos"),
		kong.Description("Hide bits in plain text with reversible, invisible edits"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, os.Stderr, os.Exit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
