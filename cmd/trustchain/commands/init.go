package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustchain/internal/block"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Sign the root block of a new trustchain with the device key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			root, err := appCtx.Author.CreateTrustchain(pass)
			if err != nil {
				return err
			}
			appCtx.Log.Info("trustchain created", "trustchain_id", root.TrustchainID)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trustchain: %s\n", encode(root.TrustchainID[:]))
			fmt.Fprintf(out, "Block: %s\n", encode(block.Serialize(root)))
			return nil
		},
	}
}
