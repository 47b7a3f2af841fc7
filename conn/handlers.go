package conn

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	mrand "math/rand/v2"

	"github.com/go-mclib/mcserver/mojang"
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/packets"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/protoerr"
	"github.com/go-mclib/mcserver/world"
)

// route sends a decoded serverbound packet to its handler and returns the
// clientbound packets to send in response, in order. A nil pkt.(type) match
// (an unknown but successfully-dispatched packet) never reaches here;
// packets.Dispatch already turns that into a non-fatal error upstream.
func route(pkt protocol.Packet, c *ConnInfo, pc *protocol.Conn, assets *Assets) ([]protocol.Packet, error) {
	switch p := pkt.(type) {
	case *packets.Handshake:
		return handleHandshake(p, c)
	case *packets.StatusRequest:
		return handleStatusRequest(assets)
	case *packets.PingRequest:
		return handlePingRequest(p)
	case *packets.LoginStart:
		return handleLoginStart(p, c, assets)
	case *packets.EncryptionResponse:
		return handleEncryptionResponse(p, c, pc, assets)
	case *packets.LoginAcknowledged:
		return handleLoginAcknowledged(c, assets)
	case *packets.ClientInformation:
		return handleClientInformation()
	case *packets.ConfigurationFinishAck:
		return handleConfigurationFinishAck(c)
	case *packets.ConfigurationKeepAliveResponse:
		return handleConfigurationKeepAliveResponse(p, c)
	case *packets.PlayKeepAliveResponse:
		return handlePlayKeepAliveResponse(p, c)
	case *packets.PlayerSession:
		return handlePlayerSession(c)
	case *packets.SetPlayerPosition:
		return handleSetPlayerPosition(p, c)
	case *packets.SetPlayerPositionAndRotation:
		return handleSetPlayerPositionAndRotation(p, c)
	case *packets.SetPlayerRotation:
		return handleSetPlayerRotation(p, c)
	case *packets.ConfirmTeleportation:
		return handleConfirmTeleportation(p, c, assets)
	case *packets.PlayerCommand:
		return nil, nil
	default:
		return nil, fmt.Errorf("conn: no handler registered for %T", pkt)
	}
}

func handleHandshake(p *packets.Handshake, c *ConnInfo) ([]protocol.Packet, error) {
	switch p.NextState {
	case packets.NextStateStatus:
		c.SetState(protocol.StateStatus)
	case packets.NextStateLogin:
		c.SetState(protocol.StateLogin)
	default:
		return nil, protoerr.InvalidNextState(int32(p.NextState))
	}
	return nil, nil
}

func handleStatusRequest(assets *Assets) ([]protocol.Packet, error) {
	return []protocol.Packet{&packets.StatusResponse{JSON: ns.String(assets.Motd)}}, nil
}

func handlePingRequest(p *packets.PingRequest) ([]protocol.Packet, error) {
	return []protocol.Packet{&packets.PingResponse{Payload: p.Payload}}, nil
}

// generateVerifyToken returns a fresh 4-byte nonce for the encryption
// handshake. This is security-sensitive, unlike the keepalive/teleport
// nonces below, so it uses crypto/rand rather than math/rand/v2.
func generateVerifyToken() ([]byte, error) {
	token := make([]byte, 4)
	if _, err := rand.Read(token); err != nil {
		return nil, fmt.Errorf("generate verify token: %w", err)
	}
	return token, nil
}

func handleLoginStart(p *packets.LoginStart, c *ConnInfo, assets *Assets) ([]protocol.Packet, error) {
	name := string(p.Name)
	debugf("player %q wants to login", name)

	token, err := generateVerifyToken()
	if err != nil {
		return nil, err
	}
	c.SetVerifyToken(token)

	if assets.Online {
		// the uuid is filled in once the session server confirms the login
		c.SetIdentity(name, ns.UUID{})
		return []protocol.Packet{&packets.EncryptionRequest{
			ServerID:    "",
			PublicKey:   assets.PublicKeyDER,
			VerifyToken: token,
		}}, nil
	}

	offlineUUID := md5.Sum([]byte("OfflinePlayer:" + name))
	offlineUUID[6] = offlineUUID[6]&0x0f | 0x30 // version 3
	offlineUUID[8] = offlineUUID[8]&0x3f | 0x80 // RFC 4122 variant
	playerUUID, err := ns.UUIDFromBytes(offlineUUID[:])
	if err != nil {
		return nil, fmt.Errorf("build offline uuid: %w", err)
	}
	c.SetIdentity(name, playerUUID)

	return []protocol.Packet{&packets.LoginSuccess{Profile: ns.GameProfile{
		UUID:     playerUUID,
		Username: ns.String(name),
	}}}, nil
}

// handleEncryptionResponse completes the online-mode login handshake: it
// decrypts the client's verify token and shared secret with the server's
// RSA private key, turns on AES-128-CFB8 transport encryption, and confirms
// the session with Mojang before letting the player in. There's no private-
// key decrypt helper in the crypto package (EnableEncryption only builds the
// AES streams from an already-known secret), so this reaches into
// crypto/rsa directly, same as crypto/rsa_keys.go already does.
func handleEncryptionResponse(p *packets.EncryptionResponse, c *ConnInfo, pc *protocol.Conn, assets *Assets) ([]protocol.Packet, error) {
	verifyTokenPlain, err := rsa.DecryptPKCS1v15(rand.Reader, assets.PrivateKey, p.VerifyToken)
	if err != nil {
		return nil, protoerr.Other("decrypt verify token: %v", err)
	}
	if string(verifyTokenPlain) != string(c.VerifyToken()) {
		return nil, protoerr.Other("verify token mismatch")
	}

	sharedSecret, err := rsa.DecryptPKCS1v15(rand.Reader, assets.PrivateKey, p.SharedSecret)
	if err != nil {
		return nil, protoerr.Other("decrypt shared secret: %v", err)
	}

	enc := pc.Encryption()
	enc.SetSharedSecret(sharedSecret)
	if err := enc.EnableEncryption(); err != nil {
		return nil, protoerr.Other("enable encryption: %v", err)
	}
	debugf("encryption enabled for %q", c.Username())

	serverHash := mojang.ComputeServerHash("", sharedSecret, assets.PublicKeyDER)
	resp, err := assets.SessionServer.HasJoined(c.Username(), serverHash)
	if err != nil {
		return nil, protoerr.Other("session server hasJoined: %v", err)
	}
	if resp == nil {
		return nil, protoerr.Other("session server rejected %q", c.Username())
	}

	playerUUID, err := ns.UUIDFromString(resp.ID)
	if err != nil {
		return nil, fmt.Errorf("parse session profile uuid: %w", err)
	}
	c.SetIdentity(resp.Name, playerUUID)

	properties := make(ns.PrefixedArray[ns.ProfileProperty], 0, len(resp.Properties))
	for _, prop := range resp.Properties {
		entry := ns.ProfileProperty{Name: ns.String(prop.Name), Value: ns.String(prop.Value)}
		if prop.Signature != "" {
			entry.Signature = ns.Some(ns.String(prop.Signature))
		}
		properties = append(properties, entry)
	}

	return []protocol.Packet{&packets.LoginSuccess{Profile: ns.GameProfile{
		UUID:       playerUUID,
		Username:   ns.String(resp.Name),
		Properties: properties,
	}}}, nil
}

// serverBrand is announced to every client immediately after it enters
// Configuration, matching vanilla's own PluginMessage("minecraft:brand").
const serverBrand = "vanilla"

func handleLoginAcknowledged(c *ConnInfo, assets *Assets) ([]protocol.Packet, error) {
	c.SetState(protocol.StateConfiguration)
	return []protocol.Packet{
		&packets.RegistryData{Data: assets.Registry},
		&packets.PluginMessage{Channel: "minecraft:brand", Data: ns.ByteArray(serverBrand)},
	}, nil
}

func handleClientInformation() ([]protocol.Packet, error) {
	return []protocol.Packet{&packets.ConfigurationFinish{}}, nil
}

// handleConfigurationFinishAck advances to Play and sends the fixed
// single-dimension world description every connection spawns into.
func handleConfigurationFinishAck(c *ConnInfo) ([]protocol.Packet, error) {
	c.SetState(protocol.StatePlay)
	return []protocol.Packet{
		&packets.PlayLogin{
			EntityID:            0,
			IsHardcore:          false,
			DimensionNames:      ns.PrefixedArray[ns.Identifier]{"world"},
			MaxPlayers:          2,
			ViewDistance:        5,
			SimulationDistance:  3,
			ReducedDebugInfo:    false,
			EnableRespawnScreen: false,
			DoLimitedCrafting:   false,
			DimensionType:       "minecraft:overworld",
			DimensionName:       "minecraft:overworld",
			HashedSeed:          0,
			GameMode:            0,
			PreviousGameMode:    0,
			IsDebug:             false,
			IsFlat:              false,
			DeathLocation:       ns.None[packets.DeathLocation](),
			PortalCooldown:      0,
		},
		&packets.PlayerAbilities{Flags: 0, FlyingSpeed: 0.05, FOVModifier: 0.1},
	}, nil
}

func handleConfigurationKeepAliveResponse(p *packets.ConfigurationKeepAliveResponse, c *ConnInfo) ([]protocol.Packet, error) {
	if int64(p.Payload) != c.KeepAliveID() {
		return nil, protoerr.KeepAliveIDMismatch(c.KeepAliveID(), int64(p.Payload))
	}
	return nil, nil
}

func handlePlayKeepAliveResponse(p *packets.PlayKeepAliveResponse, c *ConnInfo) ([]protocol.Packet, error) {
	if int64(p.Payload) != c.KeepAliveID() {
		return nil, protoerr.KeepAliveIDMismatch(c.KeepAliveID(), int64(p.Payload))
	}
	return nil, nil
}

// handlePlayerSession issues the hotbar slot, the (currently empty) recipe
// book, and a fresh teleport id the client must echo via
// ConfirmTeleportation before it's allowed to start receiving chunks.
func handlePlayerSession(c *ConnInfo) ([]protocol.Packet, error) {
	teleportID := ns.VarInt(mrand.Int32())
	c.SetTeleportID(teleportID)

	return []protocol.Packet{
		&packets.SetHeldItem{Slot: 0},
		&packets.UpdateRecipes{},
		&packets.SynchronizePlayerPosition{
			X: 0, Y: 0, Z: 0,
			Yaw: 0, Pitch: 0,
			Flags:      0,
			TeleportID: teleportID,
		},
	}, nil
}

func handleSetPlayerPosition(p *packets.SetPlayerPosition, c *ConnInfo) ([]protocol.Packet, error) {
	pos := c.Position()
	pos.X, pos.Y, pos.Z = float64(p.X), float64(p.Y), float64(p.Z)
	pos.OnGround = bool(p.OnGround)
	c.SetPosition(pos)
	return nil, nil
}

func handleSetPlayerPositionAndRotation(p *packets.SetPlayerPositionAndRotation, c *ConnInfo) ([]protocol.Packet, error) {
	pos := c.Position()
	pos.X, pos.Y, pos.Z = float64(p.X), float64(p.Y), float64(p.Z)
	pos.Yaw, pos.Pitch = float32(p.Yaw), float32(p.Pitch)
	pos.OnGround = bool(p.OnGround)
	c.SetPosition(pos)
	return nil, nil
}

func handleSetPlayerRotation(p *packets.SetPlayerRotation, c *ConnInfo) ([]protocol.Packet, error) {
	pos := c.Position()
	pos.Yaw, pos.Pitch = float32(p.Yaw), float32(p.Pitch)
	pos.OnGround = bool(p.OnGround)
	c.SetPosition(pos)
	return nil, nil
}

// chunkRadius is how far out ConfirmTeleportation streams chunk columns
// around the spawn column (0,0): a 7x7 square, -3..3 on each axis.
// cmd/server's chunkRadiusDefault mirrors this value.
const chunkRadius = 3

// handleConfirmTeleportation streams the spawn chunk square once the client
// has accepted the post-login teleport, then points it at the spawn
// position and center chunk.
func handleConfirmTeleportation(p *packets.ConfirmTeleportation, c *ConnInfo, assets *Assets) ([]protocol.Packet, error) {
	if p.TeleportID != c.TeleportID() {
		return nil, protoerr.TeleportIDMismatch(int32(c.TeleportID()), int32(p.TeleportID))
	}

	out := make([]protocol.Packet, 0, 2+(2*chunkRadius+1)*(2*chunkRadius+1))
	out = append(out,
		&packets.SetDefaultSpawnPosition{Location: ns.NewPosition(0, 0, 0), Angle: 0},
		&packets.SetCenterChunk{ChunkX: 0, ChunkZ: 0},
	)

	for cx := -chunkRadius; cx <= chunkRadius; cx++ {
		for cz := -chunkRadius; cz <= chunkRadius; cz++ {
			chunk, err := encodeColumn(assets.World, cx, cz)
			if err != nil {
				return nil, fmt.Errorf("encode chunk column (%d,%d): %w", cx, cz, err)
			}
			out = append(out, &packets.ChunkDataAndUpdateLight{
				ChunkX: ns.Int32(cx),
				ChunkZ: ns.Int32(cz),
				Chunk:  chunk,
			})
		}
	}

	return out, nil
}

// encodeColumn serializes every vertical section of world column (cx, cz)
// into the raw Data blob ChunkData carries, with no heightmaps, block
// entities, or light data; light is sent fully empty, leaving the client to
// fall back to its own lighting engine.
func encodeColumn(w *world.World, cx, cz int) (ns.ChunkData, error) {
	buf := ns.NewWriter()
	for y := 0; y < world.ColumnHeight; y++ {
		coord := world.SectionCoord{X: cx, Y: y - 4, Z: cz}
		section := w.Section(coord)
		if section == nil {
			section = world.NewSection()
		}
		if err := section.Encode(buf); err != nil {
			return ns.ChunkData{}, err
		}
	}
	return ns.ChunkData{Data: buf.Bytes()}, nil
}
