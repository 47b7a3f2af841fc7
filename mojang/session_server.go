package mojang

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-mclib/mcserver/crypto"
)

// SessionServerClient is a client for Mojang's session server, used during
// the online-mode login handshake to confirm a player actually owns the
// account they claim (conn.handleEncryptionResponse).
type SessionServerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSessionServerClient creates a new session server client pointed at the
// real Mojang session server.
func NewSessionServerClient() *SessionServerClient {
	return &SessionServerClient{
		baseURL: "https://sessionserver.mojang.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// HasJoinedResponse represents the response from /session/minecraft/hasJoined
type HasJoinedResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// Property represents a profile property
type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

// ErrorResponse represents an error response from Mojang
type ErrorResponse struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Path         string `json:"path,omitempty"`
}

func (e ErrorResponse) String() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Error, e.ErrorMessage, e.Path)
	}
	return fmt.Sprintf("%s (path: %s)", e.Error, e.Path)
}

// HasJoined checks whether a user has joined a server, confirming the
// encrypted session against Mojang's records.
func (c *SessionServerClient) HasJoined(username, serverID string, ip ...string) (*HasJoinedResponse, error) {
	url := fmt.Sprintf("%s/session/minecraft/hasJoined?username=%s&serverId=%s",
		c.baseURL, username, serverID)

	if len(ip) > 0 && ip[0] != "" {
		url += "&ip=" + ip[0]
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create hasJoined request: %w", err)
	}
	req.Header.Set("User-Agent", "gomc-protocol/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send hasJoined request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == 204 {
		// user hasn't joined or session expired
		return nil, nil
	}

	if resp.StatusCode != 200 {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("hasJoined failed: %s (status %d)", string(body), resp.StatusCode)
		}
		return nil, fmt.Errorf("hasJoined failed: %s (status %d)", errResp.String(), resp.StatusCode)
	}

	var hasJoinedResp HasJoinedResponse
	if err := json.Unmarshal(body, &hasJoinedResp); err != nil {
		return nil, fmt.Errorf("failed to parse hasJoined response: %w", err)
	}

	return &hasJoinedResp, nil
}

// ComputeServerHash builds the Mojang session hash (§6.2): SHA-1 over
// serverID, the raw shared secret, and the DER-encoded public key, printed
// as a signed hex number.
func ComputeServerHash(serverID string, sharedSecret, publicKey []byte) string {
	hasher := crypto.NewMinecraftSHA1()

	hasher.Write([]byte(serverID))
	hasher.Write(sharedSecret)
	hasher.Write(publicKey)

	return hasher.HexDigest()
}
