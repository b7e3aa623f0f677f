// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
	"io"
	"net"

	"github.com/Qitmeer/btk/core/protocol"
	s "github.com/Qitmeer/btk/core/serialization"
	"github.com/pkg/errors"
)

// ErrInvalidNetAddr describes an error that indicates the caller didn't specify
// a TCP address as required.
var ErrInvalidNetAddr = errors.New("provided net.Addr is not a net.TCPAddr")

// NetAddressPayload is the size of a NetAddress inside a version message:
// services 8 bytes + ip 16 bytes + port 2 bytes.
const NetAddressPayload = 26

// NetAddress defines information about a peer on the network including the
// services it supports, its IP address, and port.  The version message
// carries it without a timestamp, which is the only form used here.
type NetAddress struct {
	// Bitfield which identifies the services supported by the address.
	Services protocol.ServiceFlag

	// IP address of the peer.
	IP net.IP

	// Port the peer is using.  This is encoded in big endian on the wire
	// which differs from most everything else.
	Port uint16
}

// NewNetAddressIPPort returns a new NetAddress using the provided IP, port, and
// supported services.
func NewNetAddressIPPort(ip net.IP, port uint16, services protocol.ServiceFlag) *NetAddress {
	return &NetAddress{
		Services: services,
		IP:       ip,
		Port:     port,
	}
}

// NewNetAddress returns a new NetAddress using the provided TCP address and
// supported services.
//
// Note that addr must be a net.TCPAddr.  An ErrInvalidNetAddr is returned
// if it is not.
func NewNetAddress(addr net.Addr, services protocol.ServiceFlag) (*NetAddress, error) {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return nil, ErrInvalidNetAddr
	}
	return NewNetAddressIPPort(tcpAddr.IP, uint16(tcpAddr.Port), services), nil
}

// ReadNetAddress reads an encoded NetAddress from r.
func ReadNetAddress(r io.Reader, na *NetAddress) error {
	var (
		services uint64
		ip       [16]byte
	)
	err := s.ReadElements(r, &services, &ip)
	if err != nil {
		return err
	}

	// Sigh. protocol mixes little and big endian.
	port, err := s.BinarySerializer.Uint16(r, binary.BigEndian)
	if err != nil {
		return err
	}

	*na = NetAddress{
		Services: protocol.ServiceFlag(services),
		IP:       net.IP(ip[:]),
		Port:     port,
	}
	return nil
}

// WriteNetAddress serializes a NetAddress to w.
func WriteNetAddress(w io.Writer, na *NetAddress) error {
	// Ensure to always write 16 bytes even if the ip is nil.
	var ip [16]byte
	if na.IP != nil {
		copy(ip[:], na.IP.To16())
	}
	err := s.WriteElements(w, uint64(na.Services), ip)
	if err != nil {
		return err
	}

	// Sigh.  protocol mixes little and big endian.
	return s.BinarySerializer.PutUint16(w, binary.BigEndian, na.Port)
}
