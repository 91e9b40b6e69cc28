package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustchain/internal/block"
	"trustchain/internal/crypto"
	"trustchain/internal/services/author"
)

func publishKeyCmd() *cobra.Command {
	var (
		trustchainID, authorID, userID, userKey string
		resourceID, resourceKey                 string
		index                                   uint64
	)
	cmd := &cobra.Command{
		Use:   "publish-key",
		Short: "Sign a block sharing a resource key with a user",
		Long: "Seal a resource key to a user's public encryption key and sign a\n" +
			"key publication block with the device key. A random resource id and\n" +
			"key are generated unless given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}

			p := author.Publication{Index: index}
			for _, f := range []struct {
				name, text string
				dst        []byte
			}{
				{"trustchain", trustchainID, p.TrustchainID[:]},
				{"author", authorID, p.Author[:]},
				{"user", userID, p.RecipientUser[:]},
				{"user-key", userKey, p.RecipientKey[:]},
			} {
				if err := decodeInto(f.name, f.text, f.dst); err != nil {
					return err
				}
			}

			if resourceID == "" {
				if p.ResourceID, err = crypto.RandomMac(); err != nil {
					return err
				}
			} else if err := decodeInto("resource-id", resourceID, p.ResourceID[:]); err != nil {
				return err
			}
			if resourceKey == "" {
				if p.ResourceKey, err = crypto.RandomSymmetricKey(); err != nil {
					return err
				}
			} else if err := decodeInto("resource-key", resourceKey, p.ResourceKey[:]); err != nil {
				return err
			}
			defer crypto.Wipe(p.ResourceKey[:])

			b, err := appCtx.Author.PublishKeyToUser(pass, p)
			if err != nil {
				return err
			}
			appCtx.Log.Info("key published", "index", b.Index, "hash", b.Hash())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Resource id: %s\n", encode(p.ResourceID[:]))
			fmt.Fprintf(out, "Resource key: %s\n", encode(p.ResourceKey[:]))
			fmt.Fprintf(out, "Block: %s\n", encode(block.Serialize(b)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&trustchainID, "trustchain", "", "trustchain id")
	f.Uint64Var(&index, "index", 0, "index of the new block")
	f.StringVar(&authorID, "author", "", "hash of this device's creation block")
	f.StringVar(&userID, "user", "", "recipient user id")
	f.StringVar(&userKey, "user-key", "", "recipient user public encryption key")
	f.StringVar(&resourceID, "resource-id", "", "resource id (default random)")
	f.StringVar(&resourceKey, "resource-key", "", "resource key (default random)")
	for _, name := range []string{"trustchain", "index", "author", "user", "user-key"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
