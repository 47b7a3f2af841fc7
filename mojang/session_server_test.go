package mojang_test

import (
	"testing"

	"github.com/go-mclib/mcserver/mojang"
)

func TestComputeServerHash(t *testing.T) {
	// https://github.com/PrismarineJS/node-yggdrasil/blob/c2b1e534dc56d33d8ea0c1ba02ead058b9db07b1/test/index.js#L70
	serverID := "cat"
	sharedSecret := []byte("cat")
	publicKey := []byte("cat")

	result := mojang.ComputeServerHash(serverID, sharedSecret, publicKey)
	expected := "-af59e5b1d5d92e5c2c2776ed0e65e90be181f2a"

	if result != expected {
		t.Errorf("ComputeServerHash() = %q, expected %q", result, expected)
	}
}
