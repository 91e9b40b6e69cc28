package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustchain/internal/block"
	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/inspect"
	"trustchain/internal/nature"
)

func inspectCmd() *cobra.Command {
	var verifyKey string
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Decode a block and print its header and payload",
		Long: "Read an encoded block from file, or stdin when no file or \"-\" is\n" +
			"given, and print it in the configured output format. Root blocks are\n" +
			"always verified; other blocks when --verify-key is set.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			raw, err := crypto.Decode(appCtx.Config.Encoding, string(text))
			if err != nil {
				return fmt.Errorf("decode %s input: %w", appCtx.Config.Encoding, err)
			}
			b, err := block.Unserialize(raw)
			if err != nil {
				return err
			}
			appCtx.Log.Debug("decoded block", "nature", b.Nature, "index", b.Index, "bytes", len(raw))

			view, err := inspect.NewView(b)
			if err != nil {
				return err
			}
			switch {
			case b.Nature == nature.TrustchainCreation:
				if _, err := block.VerifyRoot(b); err != nil {
					return err
				}
				view.Verified = inspect.VerifiedRoot
			case verifyKey != "":
				var pub domain.PublicSignatureKey
				if err := decodeInto("verify-key", verifyKey, pub[:]); err != nil {
					return err
				}
				if err := block.Verify(b, pub); err != nil {
					return err
				}
				view.Verified = inspect.VerifiedSignature
			}

			rendered, err := inspect.Render(view, appCtx.Config.Output)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if appCtx.Config.Output == inspect.FormatCBOR {
				_, err = fmt.Fprintln(out, encode(rendered))
				return err
			}
			_, err = out.Write(rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&verifyKey, "verify-key", "", "author public signature key to verify the block with")
	return cmd
}
