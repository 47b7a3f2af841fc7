// Command server runs a standalone 1.20.2 (protocol 764) Minecraft server
// core: status ping, login (offline or Mojang-authenticated), and a flat
// Play world streamed to anyone who finishes the handshake.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-mclib/mcserver/conn"
	"github.com/go-mclib/mcserver/crypto"
	"github.com/go-mclib/mcserver/registry"
	"github.com/go-mclib/mcserver/server"
	"github.com/go-mclib/mcserver/world"
)

// Config is the server's on-disk configuration, loaded from server.yaml.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	Online       bool   `yaml:"online"`
	Motd         string `yaml:"motd"`
	FaviconPath  string `yaml:"favicon_path"`
	RegistryPath string `yaml:"registry_path"`
	StatusAddr   string `yaml:"status_addr"`
	WorldRadius  int    `yaml:"world_radius"`
	RSAKeyBits   int    `yaml:"rsa_key_bits"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr:   ":25565",
		Online:       true,
		Motd:         `{"version":{"name":"1.20.2","protocol":764},"players":{"max":20,"online":0},"description":{"text":"a go-mclib/mcserver world"}}`,
		RegistryPath: "assets/registry.json",
		StatusAddr:   ":8080",
		WorldRadius:  chunkRadiusDefault,
		RSAKeyBits:   1024,
	}
}

// chunkRadiusDefault matches the 7x7 column square streamed on teleport
// confirmation (conn.chunkRadius), so a freshly built world always has
// every column the Play handlers will ask for.
const chunkRadiusDefault = 3

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func buildMotd(cfg Config) string {
	if cfg.FaviconPath == "" {
		return cfg.Motd
	}
	icon, err := os.ReadFile(cfg.FaviconPath)
	if err != nil {
		log.Printf("favicon not loaded, continuing without it: %v", err)
		return cfg.Motd
	}
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(icon)
	return strings.Replace(cfg.Motd, "§§§", encoded, 1)
}

func main() {
	configPath := flag.String("config", "server.yaml", "path to server.yaml")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	privateKey, err := crypto.GenerateRSAKeyPair(cfg.RSAKeyBits)
	if err != nil {
		log.Fatalf("generate rsa keypair: %v", err)
	}
	publicKeyDER, err := crypto.ConvertPublicKeyToSPKI(&privateKey.PublicKey)
	if err != nil {
		log.Fatalf("encode rsa public key: %v", err)
	}

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		log.Fatalf("load registry: %v", err)
	}

	w, err := world.NewFlat(cfg.WorldRadius, 9, 1)
	if err != nil {
		log.Fatalf("build world: %v", err)
	}

	assets := conn.NewAssets(cfg.Online, buildMotd(cfg), privateKey, publicKeyDER, reg, w)

	srv, err := server.New(cfg.ListenAddr, assets)
	if err != nil {
		log.Fatalf("start listener: %v", err)
	}

	go serveStatusEndpoint(cfg.StatusAddr, srv)

	log.Printf("listening on %s (online=%v)", srv.Addr(), cfg.Online)
	if err := srv.Serve(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// serveStatusEndpoint exposes GET /players as JSON, for external tooling
// that wants a live player list without speaking the game protocol.
func serveStatusEndpoint(addr string, srv *server.Server) {
	mux := http.NewServeMux()
	mux.HandleFunc("/players", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(srv.PlayerInfos()); err != nil {
			log.Printf("encode players response: %v", err)
		}
	})
	log.Printf("status endpoint listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("status endpoint stopped: %v", err)
	}
}
