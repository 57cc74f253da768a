package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decrypt text with a cipher variant",
		Example: `  cipherkit decode --variant caesar --shift 3 "KHOOR ZRUOG"
  cipherkit decode --variant atbash --file secret.txt -o plain.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCipher()
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			result := c.Decode(text)
			log.Debug().
				Stringer("variant", c.Variant()).
				Str("key", c.FormatKey()).
				Int("runes", len([]rune(text))).
				Msg("decoded")

			if jsonOut {
				return printJSON(codecOutput{
					Variant: c.Variant(),
					Key:     c.Key(),
					KeyText: c.FormatKey(),
					Result:  result,
				})
			}
			return writeResult(result)
		},
	}
	addKeyFlags(cmd)
	addInputFlags(cmd)
	return cmd
}
