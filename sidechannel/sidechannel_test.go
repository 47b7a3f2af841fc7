package sidechannel

import (
	"encoding/json"
	"testing"

	"github.com/go-mclib/mcserver/world"
)

func TestPlayerInfoMarshalsExpectedShape(t *testing.T) {
	info := PlayerInfo{
		Username: "Notch",
		UUID:     "069a79f4-44e9-4726-a5be-fca90e38aaf5",
		State:    "play",
		Position: world.PlayerPosition{X: 1, Y: 64, Z: -3, Yaw: 90, Pitch: 0, OnGround: true},
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"username", "uuid", "state", "position"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing json key %q in %s", key, data)
		}
	}
	if decoded["username"] != "Notch" {
		t.Errorf("username = %v", decoded["username"])
	}
}
