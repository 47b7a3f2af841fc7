// Package sidechannel defines the data shape the HTTP status endpoint
// (cmd/server) uses to report live players, keeping that transport detail
// out of the conn and server packages.
package sidechannel

import "github.com/go-mclib/mcserver/world"

// PlayerInfo is a point-in-time snapshot of one connected player, safe to
// marshal and hand to an HTTP handler without holding any connection lock.
type PlayerInfo struct {
	Username string               `json:"username"`
	UUID     string               `json:"uuid"`
	State    string               `json:"state"`
	Position world.PlayerPosition `json:"position"`
}
