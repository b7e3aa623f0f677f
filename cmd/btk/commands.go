// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"

	"github.com/Qitmeer/btk/btk"
	"github.com/Qitmeer/btk/common/hash"
	"github.com/Qitmeer/btk/config"
	"github.com/Qitmeer/btk/crypto/privkey"
	"github.com/Qitmeer/btk/log"
	"github.com/Qitmeer/btk/metrics"
	"github.com/Qitmeer/btk/params"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin

	// stdinIsTerminal reports whether stdin is an interactive terminal.
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// ErrUsage is returned for option combinations a command does not accept.
var ErrUsage = errors.New("usage error")

type command struct {
	name  string
	short string
	long  string
	data  interface{}
}

func commands(cfg *config.Config) []command {
	return []command{
		{"privkey", "convert or create a private key", privKeyLong, &privKeyCommand{}},

		{"base58-encode", "encode a base16 string to a base58 string", "", &base58EncodeCommand{}},
		{"base58-decode", "decode a base58 string to a base16 string", "", &base58DecodeCommand{}},
		{"base58check-encode", "encode a base58check string", "", &base58CheckEncodeCommand{}},
		{"base58check-decode", "decode a base58check string", "", &base58CheckDecodeCommand{}},

		{"sha256", "calculate SHA256 hash of a base16 data", "", &hashCommand{ht: hash.SHA256}},
		{"ripemd160", "calculate ripemd160 hash of a base16 data", "", &hashCommand{ht: hash.RIPEMD160}},
		{"bitcoin160", "calculate ripemd160(sha256(data))", "", &bitcoin160Command{}},
		{"blake256", "calculate blake256 hash of a base16 data", "", &hashCommand{ht: hash.Blake256}},
		{"blake2b256", "calculate Blake2b 256 hash of a base16 data", "", &hashCommand{ht: hash.Blake2b_256}},
		{"blake2b512", "calculate Blake2b 512 hash of a base16 data", "", &hashCommand{ht: hash.Blake2b_512}},

		{"message-encode", "frame a base16 payload as a bitcoin wire message", "", &messageEncodeCommand{}},
		{"message-decode", "decode a base16 bitcoin wire message", "", &messageDecodeCommand{}},
		{"txoutput-decode", "decode a base16 transaction output", "", &txOutputDecodeCommand{}},
		{"node-send", "send a message to a bitcoin node and print the replies", "", &nodeSendCommand{cfg: cfg}},
	}
}

// readArg returns the single argument, or stdin when there is none.
func readArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		b, err := ioutil.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return strings.TrimSpace(string(b)), nil
	case 1:
		return args[0], nil
	}
	return "", errors.Wrapf(ErrUsage, "expected one argument, got %d", len(args))
}

func printLine(s string) error {
	_, err := fmt.Fprintln(stdout, s)
	return err
}

const privKeyLong = `Convert a private key between formats, or create a new one with -n.

The key is read from the argument, or from stdin when no argument is given.
Without an input option the format is guessed.  WIF output keeps the network
of a WIF input; otherwise -T selects testnet.`

type privKeyCommand struct {
	New        bool `short:"n" description:"Generate a new private key"`
	WIF        bool `short:"w" description:"Input is WIF"`
	Hex        bool `short:"x" description:"Input is hex"`
	Raw        bool `short:"r" description:"Input is raw bytes (piped)"`
	Str        bool `short:"s" description:"Input is a passphrase, hashed with sha256"`
	Dec        bool `short:"d" description:"Input is decimal"`
	Blob       bool `short:"b" description:"Input is binary data (piped), hashed with sha256"`
	OutWIF     bool `short:"W" description:"Output WIF (default)"`
	OutHex     bool `short:"H" description:"Output hex"`
	OutRaw     bool `short:"R" description:"Output raw bytes"`
	OutDec     bool `short:"D" description:"Output decimal"`
	Compress   bool `short:"C" description:"Output the key for a compressed public key"`
	Uncompress bool `short:"U" description:"Output the key for an uncompressed public key"`
	NoNewline  bool `short:"N" description:"Do not print a trailing newline"`
	TestNet    bool `short:"T" description:"Use the test network for WIF output"`
}

// pick returns the format of the single set flag, def when none is set.
func pick(def privkey.Format, what string, set map[privkey.Format]bool) (privkey.Format, error) {
	f, n := def, 0
	for format, on := range set {
		if on {
			f = format
			n++
		}
	}
	if n > 1 {
		return 0, errors.Wrapf(ErrUsage, "only one %s format may be given", what)
	}
	return f, nil
}

func (c *privKeyCommand) options() (*btk.PrivKeyOptions, error) {
	in, err := pick(privkey.FormatGuess, "input", map[privkey.Format]bool{
		privkey.FormatNew:        c.New,
		privkey.FormatWIF:        c.WIF,
		privkey.FormatHex:        c.Hex,
		privkey.FormatRaw:        c.Raw,
		privkey.FormatPassphrase: c.Str,
		privkey.FormatDecimal:    c.Dec,
		privkey.FormatBlob:       c.Blob,
	})
	if err != nil {
		return nil, err
	}
	out, err := pick(privkey.FormatWIF, "output", map[privkey.Format]bool{
		privkey.FormatWIF:     c.OutWIF,
		privkey.FormatHex:     c.OutHex,
		privkey.FormatRaw:     c.OutRaw,
		privkey.FormatDecimal: c.OutDec,
	})
	if err != nil {
		return nil, err
	}

	opts := &btk.PrivKeyOptions{
		Input:     in,
		Output:    out,
		NoNewline: c.NoNewline,
		TestNet:   c.TestNet,
	}
	switch {
	case c.Compress && c.Uncompress:
		return nil, errors.Wrap(ErrUsage, "-C and -U are exclusive")
	case c.Compress:
		opts.Compression = btk.Compress
	case c.Uncompress:
		opts.Compression = btk.Uncompress
	}
	return opts, nil
}

// Execute implements flags.Commander.
func (c *privKeyCommand) Execute(args []string) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	var input []byte
	switch {
	case opts.Input == privkey.FormatNew:
		if len(args) > 0 {
			return errors.Wrap(ErrUsage, "-n takes no input")
		}
	case len(args) == 1:
		input = []byte(args[0])
	case len(args) > 1:
		return errors.Wrapf(ErrUsage, "expected one argument, got %d", len(args))
	default:
		binary := opts.Input == privkey.FormatRaw || opts.Input == privkey.FormatBlob
		if binary && stdinIsTerminal() {
			return errors.Wrapf(ErrUsage, "piped or redirected input required for %s data", opts.Input)
		}
		input, err = ioutil.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
	}

	out, err := btk.PrivKey(input, opts)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

type base58EncodeCommand struct{}

func (c *base58EncodeCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.Base58Encode(in)
	if err != nil {
		return err
	}
	return printLine(s)
}

type base58DecodeCommand struct{}

func (c *base58DecodeCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.Base58Decode(in)
	if err != nil {
		return err
	}
	return printLine(s)
}

type base58CheckEncodeCommand struct {
	Version   btk.Base58checkVersionFlag `short:"v" long:"ver" default:"mainnet" description:"the base58check version [mainnet|testnet|<hex>]"`
	Hasher    string                     `short:"a" long:"hasher" description:"checksum hasher [sha256|dsha256|ripemd160|blake256|blake2b256|dblake2b256|blake2b512], bitcoin dsha256 when empty"`
	CksumSize int                        `short:"c" long:"cksumsize" default:"4" description:"the checksum size"`
}

func (c *base58CheckEncodeCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.Base58CheckEncode(c.Version.Ver, c.Hasher, c.CksumSize, in)
	if err != nil {
		return err
	}
	return printLine(s)
}

type base58CheckDecodeCommand struct {
	Hasher      string `short:"a" long:"hasher" description:"checksum hasher, bitcoin dsha256 when empty"`
	VersionSize int    `long:"vs" default:"1" description:"the version size"`
	CksumSize   int    `long:"cs" default:"4" description:"the checksum size"`
	Details     bool   `short:"d" long:"details" description:"show decode details"`
}

func (c *base58CheckDecodeCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.Base58CheckDecode(c.Hasher, c.VersionSize, c.CksumSize, in, c.Details)
	if err != nil {
		return err
	}
	return printLine(s)
}

type hashCommand struct {
	ht hash.HashType
}

func (c *hashCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.Hash(c.ht, in)
	if err != nil {
		return err
	}
	return printLine(s)
}

type bitcoin160Command struct{}

func (c *bitcoin160Command) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.Bitcoin160(in)
	if err != nil {
		return err
	}
	return printLine(s)
}

func networkMode(testnet bool) params.NetworkMode {
	if testnet {
		return params.TestNet
	}
	return params.MainNet
}

type messageEncodeCommand struct {
	TestNet bool `short:"T" description:"Use the test network magic"`
	Args    struct {
		Command string `positional-arg-name:"command" required:"yes"`
		Payload string `positional-arg-name:"payload"`
	} `positional-args:"yes"`
}

func (c *messageEncodeCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Wrapf(ErrUsage, "unexpected arguments %v", args)
	}
	s, err := btk.MessageEncode(networkMode(c.TestNet), c.Args.Command, c.Args.Payload)
	if err != nil {
		return err
	}
	return printLine(s)
}

type messageDecodeCommand struct{}

func (c *messageDecodeCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.MessageDecode(in)
	if err != nil {
		return err
	}
	return printLine(s)
}

type txOutputDecodeCommand struct{}

func (c *txOutputDecodeCommand) Execute(args []string) error {
	in, err := readArg(args)
	if err != nil {
		return err
	}
	s, err := btk.TxOutputDecode(in)
	if err != nil {
		return err
	}
	return printLine(s)
}

type nodeSendCommand struct {
	Host    string `long:"host" default:"127.0.0.1" description:"the node host"`
	Port    int    `short:"p" long:"port" description:"the node port, the network default when 0"`
	Proxy   string `long:"proxy" description:"connect through the SOCKS5 proxy at host:port"`
	TestNet bool   `short:"T" description:"Use the test network"`
	Command string `short:"c" long:"command" default:"version" description:"the message command"`
	Payload string `long:"payload" description:"the base16 payload, a version message is built when empty"`
	Replies int    `short:"r" long:"replies" default:"1" description:"the number of replies to wait for"`

	cfg *config.Config
}

func (c *nodeSendCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Wrapf(ErrUsage, "unexpected arguments %v", args)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
	defer cancel()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		select {
		case <-interrupt:
			log.Info("Got Control+C, exiting...")
			cancel()
		case <-ctx.Done():
		}
	}()

	s, err := btk.NodeSend(ctx, &btk.NodeSendOptions{
		Host:    c.Host,
		Port:    c.Port,
		Proxy:   c.Proxy,
		Mode:    networkMode(c.TestNet),
		Command: c.Command,
		Payload: c.Payload,
		Replies: c.Replies,
	})
	if s != "" {
		if perr := printLine(s); perr != nil && err == nil {
			err = perr
		}
	}
	if metrics.Enabled() {
		metrics.WriteTo(stderr)
	}
	return err
}
