// Package hotspot provides the Wi-Fi access point step so the robot is
// reachable in the field without infrastructure.
package hotspot

import (
	"crypto/sha1" //nolint:gosec // WPA-PSK derivation is defined over SHA-1
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// DerivePSK computes the WPA pre-shared key from the passphrase and SSID
// using wpa_supplicant's derivation: PBKDF2-HMAC-SHA1, 4096 iterations,
// 256-bit key. Storing the derived key instead of the passphrase keeps the
// plaintext out of the connection file.
func DerivePSK(ssid, passphrase string) string {
	key := pbkdf2.Key([]byte(passphrase), []byte(ssid), 4096, 32, sha1.New)
	return hex.EncodeToString(key)
}
