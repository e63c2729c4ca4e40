package hwaddr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases a valid address", func(t *testing.T) {
		mac, err := Normalize("AA:BB:CC:DD:EE:1F")
		require.NoError(t, err)
		require.Equal(t, MacAddress("aa:bb:cc:dd:ee:1f"), mac)
	})

	t.Run("is idempotent on canonical input", func(t *testing.T) {
		mac, err := Normalize("aa:bb:cc:dd:ee:1f")
		require.NoError(t, err)

		again, err := Normalize(mac.String())
		require.NoError(t, err)
		require.Equal(t, mac, again)
	})

	t.Run("mixed case variants normalize to the same value", func(t *testing.T) {
		upper, err := Normalize("AA:BB:CC:DD:EE:3F")
		require.NoError(t, err)
		lower, err := Normalize("aa:bb:cc:dd:ee:3f")
		require.NoError(t, err)
		require.Equal(t, upper, lower)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"empty", ""},
			{"five groups", "aa:bb:cc:dd:ee"},
			{"seven groups", "aa:bb:cc:dd:ee:ff:00"},
			{"dash separated", "aa-bb-cc-dd-ee-ff"},
			{"no separator", "aabbccddeeff"},
			{"non-hex digit", "aa:bb:cc:dd:ee:fg"},
			{"short group", "a:bb:cc:dd:ee:ff"},
			{"long group", "aaa:bb:cc:dd:ee:ff"},
			{"leading space", " aa:bb:cc:dd:ee:ff"},
			{"trailing space", "aa:bb:cc:dd:ee:ff "},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Normalize(tt.raw)
				require.ErrorIs(t, err, ErrInvalidFormat)
			})
		}
	})
}

func TestFromHardwareAddr(t *testing.T) {
	t.Run("accepts a 48-bit address", func(t *testing.T) {
		hw, err := net.ParseMAC("AA:BB:CC:DD:EE:3F")
		require.NoError(t, err)

		mac, err := FromHardwareAddr(hw)
		require.NoError(t, err)
		require.Equal(t, MacAddress("aa:bb:cc:dd:ee:3f"), mac)
	})

	t.Run("rejects an empty address", func(t *testing.T) {
		_, err := FromHardwareAddr(nil)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("rejects a 64-bit address", func(t *testing.T) {
		hw, err := net.ParseMAC("02:00:5e:10:00:00:00:01")
		require.NoError(t, err)

		_, err = FromHardwareAddr(hw)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})
}
