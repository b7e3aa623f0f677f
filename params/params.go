// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"strings"

	"github.com/Qitmeer/btk/core/protocol"
	"github.com/pkg/errors"
)

// NetworkMode selects which network a WIF key or wire message belongs to.
// It is always passed explicitly; there is no process-wide active network.
type NetworkMode byte

const (
	MainNet NetworkMode = iota
	TestNet
)

func (m NetworkMode) String() string {
	switch m {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	}
	return fmt.Sprintf("NetworkMode(%d)", byte(m))
}

// Params defines a bitcoin network by its parameters.  These parameters are
// used to tell keys and messages for one network from those intended for use
// on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Mode is the NetworkMode these parameters belong to.
	Mode NetworkMode

	// Net defines the magic bytes used to identify the network.
	Net protocol.Network

	// DefaultPort defines the default peer-to-peer tcp port for the network.
	DefaultPort int

	// PrivateKeyID is the version byte of a WIF private key.
	PrivateKeyID byte
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNetwork describes a mode, magic, name or key prefix that
	// belongs to no registered network.
	ErrUnknownNetwork = errors.New("unknown network")
)

var (
	registeredModes = make(map[NetworkMode]*Params)
	registeredNets  = make(map[protocol.Network]*Params)
	privateKeyIDs   = make(map[byte]*Params)
)

// Register registers the network parameters.  This may error with
// ErrDuplicateNet if the network mode, magic or WIF prefix is already
// registered.
func Register(p *Params) error {
	if _, ok := registeredModes[p.Mode]; ok {
		return ErrDuplicateNet
	}
	if _, ok := registeredNets[p.Net]; ok {
		return ErrDuplicateNet
	}
	if _, ok := privateKeyIDs[p.PrivateKeyID]; ok {
		return ErrDuplicateNet
	}
	registeredModes[p.Mode] = p
	registeredNets[p.Net] = p
	privateKeyIDs[p.PrivateKeyID] = p
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(p *Params) {
	if err := Register(p); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}

// ForMode returns the parameters of mode.
func ForMode(mode NetworkMode) (*Params, error) {
	p, ok := registeredModes[mode]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "mode %d", byte(mode))
	}
	return p, nil
}

// ForNet returns the parameters identified by the wire magic net.
func ForNet(net protocol.Network) (*Params, error) {
	p, ok := registeredNets[net]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "magic %08x", uint32(net))
	}
	return p, nil
}

// ForPrivateKeyID returns the parameters whose WIF prefix is id.
func ForPrivateKeyID(id byte) (*Params, error) {
	p, ok := privateKeyIDs[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "private key prefix %02x", id)
	}
	return p, nil
}

// ParseNetwork accepts the names used on the command line: mainnet, main,
// testnet, test and testnet3.
func ParseNetwork(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case "mainnet", "main":
		return &MainNetParams, nil
	case "testnet", "test", "testnet3":
		return &TestNetParams, nil
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "%q", name)
}
