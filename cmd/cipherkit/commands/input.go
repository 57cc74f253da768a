package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cipherkit/internal/cipher"
	"cipherkit/internal/domain"
)

var (
	variantName string
	shiftFlag   int
	keyA        int
	keyB        int

	inputText  string
	inputFile  string
	outputFile string
)

func addVariantFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&variantName, "variant", "caesar",
		"cipher variant (caesar, affine, atbash, rot13, rot47)")
}

func addKeyFlags(cmd *cobra.Command) {
	addVariantFlag(cmd)
	cmd.Flags().IntVar(&shiftFlag, "shift", 0, "caesar shift in [1,25]")
	cmd.Flags().IntVar(&keyA, "a", 0, "affine multiplier, coprime with 26")
	cmd.Flags().IntVar(&keyB, "b", 0, "affine offset in [0,25]")
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputText, "text", "t", "", "text to process")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read input from file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write result to file instead of stdout")
}

// buildCipher resolves the variant and key flags into an instance. Key
// validation happens inside the constructors; fixed-key variants take no
// key flags at all.
func buildCipher() (*cipher.Cipher, error) {
	v, err := domain.ParseVariant(variantName)
	if err != nil {
		return nil, err
	}
	switch v {
	case domain.Caesar:
		return cipher.NewCaesar(shiftFlag)
	case domain.Affine:
		return cipher.NewAffine(keyA, keyB)
	default:
		return cipher.New(v, domain.Key{})
	}
}

// readInput resolves the text to process: --text wins, then --file, then
// positional arguments, then stdin.
func readInput(args []string) (string, error) {
	if inputText != "" {
		return inputText, nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", inputFile, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// writeResult sends the transformed text to --output or stdout.
func writeResult(result string) error {
	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(result), 0o644)
	}
	fmt.Println(result)
	return nil
}
