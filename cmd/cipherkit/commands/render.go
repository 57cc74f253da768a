package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"cipherkit/internal/cipher"
	"cipherkit/internal/domain"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	keyColor     = color.New(color.FgCyan, color.Bold)
	mutedColor   = color.New(color.FgYellow)
)

// codecOutput is the JSON shape of encode and decode results.
type codecOutput struct {
	Variant domain.Variant `json:"variant"`
	Key     domain.Key     `json:"key"`
	KeyText string         `json:"key_text"`
	Result  string         `json:"result"`
}

// keygenOutput is the JSON shape of keygen results.
type keygenOutput struct {
	Variant domain.Variant `json:"variant"`
	Key     domain.Key     `json:"key"`
	KeyText string         `json:"key_text"`
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func renderAttack(v domain.Variant, res *domain.AttackResult, topN int) {
	switch res.Method {
	case domain.BruteForce:
		renderBruteForce(v, res.BruteForce)
	case domain.FrequencyAnalysis:
		renderFrequency(v, res.Frequency, topN)
	case domain.KnownPlaintext:
		successColor.Printf("Recovered key: %s\n", cipher.FormatKey(v, res.KnownPlaintext.Key))
	}
}

func renderBruteForce(v domain.Variant, bf *domain.BruteForceResult) {
	if bf.Best != nil {
		successColor.Printf("Mask matched with %s\n", cipher.FormatKey(v, bf.Best.Key))
		fmt.Println(bf.Best.Plaintext)
		return
	}
	headerColor.Printf("%d candidate decodes\n", len(bf.Candidates))
	for _, c := range bf.Candidates {
		fmt.Printf("%s  %s\n", keyColor.Sprintf("%-12s", cipher.FormatKey(v, c.Key)), truncate(c.Plaintext, 70))
	}
	if maskPattern != "" && !bf.MaskMatched {
		mutedColor.Println("no decode matched the mask")
	}
}

func renderFrequency(v domain.Variant, fr *domain.FrequencyResult, topN int) {
	shown := min(topN, len(fr.Ranked))
	headerColor.Printf("Top %d of %d candidates\n", shown, len(fr.Ranked))
	for i := 0; i < shown; i++ {
		ks := fr.Ranked[i]
		fmt.Printf("%2d. %s %9.4f  %s\n",
			i+1,
			keyColor.Sprintf("%-12s", cipher.FormatKey(v, ks.Key)),
			ks.Score,
			truncate(ks.Plaintext, 60))
	}

	successColor.Printf("Best: %s (confidence %.3f)\n", cipher.FormatKey(v, fr.Best.Key), fr.Confidence)
	fmt.Println(fr.Best.Plaintext)
	mutedColor.Printf("chi2 %.2f | bigram %.3f | trigram %.3f\n",
		fr.Components.ChiSquared, fr.Components.Bigram, fr.Components.Trigram)
}

// truncate shortens s to at most n runes for single-line table cells.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
