package conn

import (
	"crypto/rsa"

	"github.com/go-mclib/mcserver/mojang"
	"github.com/go-mclib/mcserver/nbt"
	"github.com/go-mclib/mcserver/world"
)

// Assets is the immutable, server-wide state every connection's handlers
// need: the world they're streaming chunks from, the keypair backing
// encryption, and the registry bundle replayed to every client during
// Configuration. Built once at startup and shared read-only across every
// connection goroutine; nothing here is mutated after NewAssets returns.
type Assets struct {
	Online bool
	Motd   string

	PrivateKey   *rsa.PrivateKey
	PublicKeyDER []byte

	Registry nbt.Compound

	World *world.World

	SessionServer *mojang.SessionServerClient
}

// NewAssets builds the shared, read-only state handed to every connection.
func NewAssets(online bool, motd string, privateKey *rsa.PrivateKey, publicKeyDER []byte, registry nbt.Compound, w *world.World) *Assets {
	return &Assets{
		Online:        online,
		Motd:          motd,
		PrivateKey:    privateKey,
		PublicKeyDER:  publicKeyDER,
		Registry:      registry,
		World:         w,
		SessionServer: mojang.NewSessionServerClient(),
	}
}
