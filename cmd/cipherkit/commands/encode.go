package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encrypt text with a cipher variant",
		Example: `  cipherkit encode --variant caesar --shift 3 "HELLO WORLD"
  cipherkit encode --variant affine --a 5 --b 8 --file message.txt
  echo 'Hello, World!' | cipherkit encode --variant rot47`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCipher()
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			result := c.Encode(text)
			log.Debug().
				Stringer("variant", c.Variant()).
				Str("key", c.FormatKey()).
				Int("runes", len([]rune(text))).
				Msg("encoded")

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
