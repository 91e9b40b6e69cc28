package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trustchain/internal/crypto"
)

// decodeInto parses text in the configured encoding into the fixed-size dst.
func decodeInto(name, text string, dst []byte) error {
	b, err := crypto.Decode(appCtx.Config.Encoding, text)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%s: want %d bytes, got %d", name, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

// encode renders b in the configured encoding.
func encode(b []byte) string {
	// The encoding was validated with the config.
	s, _ := crypto.Encode(appCtx.Config.Encoding, b)
	return s
}

// readInput returns the contents of the file named by args[0], or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
