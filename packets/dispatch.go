// Package packets defines every wire-format packet this server core reads
// or writes, and the Dispatch function that turns a raw (id, state) pair
// plus an undecoded payload into a typed protocol.Packet.
package packets

import (
	"fmt"

	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/protoerr"
)

// Dispatch decodes a serverbound packet body given its id and the
// connection's current state. An unrecognized (id, state) pair is
// non-fatal: the caller should log it and skip the frame.
//
// LoginStart is followed on the wire by 16 bytes holding a client-supplied
// UUID that the vanilla server ignores; Dispatch consumes and discards
// them here so that type doesn't need to carry a dead field.
func Dispatch(id ns.VarInt, state protocol.State, buf *ns.PacketBuffer) (protocol.Packet, error) {
	var pkt protocol.Packet

	switch state {
	case protocol.StateHandshake:
		switch id {
		case 0x00:
			pkt = &Handshake{}
		}

	case protocol.StateStatus:
		switch id {
		case 0x00:
			pkt = &StatusRequest{}
		case 0x01:
			pkt = &PingRequest{}
		}

	case protocol.StateLogin:
		switch id {
		case 0x00:
			pkt = &LoginStart{}
		case 0x01:
			pkt = &EncryptionResponse{}
		case 0x03:
			pkt = &LoginAcknowledged{}
		}

	case protocol.StateConfiguration:
		switch id {
		case 0x00:
			pkt = &ClientInformation{}
		case 0x02:
			pkt = &ConfigurationFinishAck{}
		case 0x03:
			pkt = &ConfigurationKeepAliveResponse{}
		}

	case protocol.StatePlay:
		switch id {
		case 0x00:
			pkt = &ConfirmTeleportation{}
		case 0x06:
			pkt = &PlayerSession{}
		case 0x14:
			pkt = &PlayKeepAliveResponse{}
		case 0x16:
			pkt = &SetPlayerPosition{}
		case 0x17:
			pkt = &SetPlayerPositionAndRotation{}
		case 0x18:
			pkt = &SetPlayerRotation{}
		case 0x21:
			pkt = &PlayerCommand{}
		}
	}

	if pkt == nil {
		return nil, &protoerr.UnknownPacket{ID: int32(id), State: state.String()}
	}

	if err := pkt.Read(buf); err != nil {
		return nil, fmt.Errorf("decode %T: %w", pkt, err)
	}

	if _, ok := pkt.(*LoginStart); ok {
		if _, err := buf.ReadFixedByteArray(16); err != nil {
			return nil, fmt.Errorf("discard login-start client uuid: %w", err)
		}
	}

	return pkt, nil
}
