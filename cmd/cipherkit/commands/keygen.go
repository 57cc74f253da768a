package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cipherkit/internal/cipher"
	"cipherkit/internal/domain"
)

func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random key for a variant",
		Example: `  cipherkit keygen --variant caesar
  cipherkit keygen --variant affine --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := domain.ParseVariant(variantName)
			if err != nil {
				return err
			}
			key, err := cipher.GenerateKey(v)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(keygenOutput{
					Variant: v,
					Key:     key,
					KeyText: cipher.FormatKey(v, key),
				})
			}
			fmt.Println(cipher.FormatKey(v, key))
			return nil
		},
	}
	addVariantFlag(cmd)
	return cmd
}
