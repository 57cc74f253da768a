package commands

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cipherkit/internal/cipher"
	"cipherkit/internal/domain"
)

var (
	methodName  string
	maskPattern string
	knownPlain  string
	topN        int
)

func crackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [ciphertext]",
		Short: "Recover a cipher key from ciphertext",
		Example: `  cipherkit crack --variant caesar --method brute_force "KHOOR ZRUOG"
  cipherkit crack --variant caesar --method brute_force --mask 'HELLO.*' "KHOOR ZRUOG"
  cipherkit crack --variant caesar --method frequency_analysis --file intercepted.txt
  cipherkit crack --variant affine --method known_plaintext --plaintext HE "RC"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := domain.ParseVariant(variantName)
			if err != nil {
				return err
			}
			method, err := domain.ParseAttackMethod(methodName)
			if err != nil {
				return err
			}
			ciphertext, err := readInput(args)
			if err != nil {
				return err
			}

			params := domain.AttackParams{
				Ciphertext:  ciphertext,
				Mask:        maskPattern,
				Plaintext:   knownPlain,
				MaskTimeout: appCtx.Config.MaskTimeout(),
			}

			var s *spinner.Spinner
			if !jsonOut {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				s.Suffix = " Searching the key space..."
				s.Start()
			}

			start := time.Now()
			res, err := cipher.Crack(v, method, params)
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}
			log.Debug().
				Stringer("variant", v).
				Stringer("method", method).
				Dur("elapsed", time.Since(start)).
				Msg("attack finished")

			if jsonOut {
				return printJSON(res)
			}

			n := topN
			if n <= 0 {
				n = appCtx.Config.Output.TopN
			}
			renderAttack(v, res, n)
			return nil
		},
	}
	addVariantFlag(cmd)
	cmd.Flags().StringVar(&methodName, "method", "brute_force",
		"attack method (brute_force, frequency_analysis, known_plaintext)")
	cmd.Flags().StringVar(&maskPattern, "mask", "", "regex a brute-force decode must match")
	cmd.Flags().StringVar(&knownPlain, "plaintext", "", "known plaintext aligned with the ciphertext")
	cmd.Flags().IntVar(&topN, "top", 0, "ranked candidates to show (default from config)")
	addInputFlags(cmd)
	return cmd
}
