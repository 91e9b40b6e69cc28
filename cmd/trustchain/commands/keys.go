package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustchain/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate device keys and store them securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			keys, fp, err := appCtx.Devices.GenerateDeviceKeys(pass)
			if err != nil {
				return err
			}
			defer crypto.WipeDeviceKeys(&keys)

			appCtx.Log.Info("device keys saved", "path", appCtx.KeyPath)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Device keys created.\nFingerprint: %s\n", fp)
			fmt.Fprintf(out, "Signature key: %s\n", encode(keys.SignaturePublic[:]))
			fmt.Fprintf(out, "Encryption key: %s\n", encode(keys.EncryptionPublic[:]))
			return nil
		},
	}
}

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print device fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			fp, err := appCtx.Devices.FingerprintDevice(pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
