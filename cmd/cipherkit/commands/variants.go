package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cipherkit/internal/cipher"
	"cipherkit/internal/domain"
)

func variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List variants, key forms and supported attacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := cipher.DescribeAll()
			if jsonOut {
				return printJSON(infos)
			}

			headerColor.Printf("%-8s %-9s %-28s %-6s %s\n",
				"VARIANT", "ALPHABET", "KEY FORM", "KEYS", "ATTACKS")
			for _, info := range infos {
				fmt.Printf("%-8s %-9d %-28s %-6d %s\n",
					info.Variant,
					info.AlphabetSize,
					info.KeyForm,
					info.KeySpaceSize,
					attackList(info.Attacks))
			}
			return nil
		},
	}
}

func attackList(methods []domain.AttackMethod) string {
	if len(methods) == 0 {
		return "none"
	}
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
