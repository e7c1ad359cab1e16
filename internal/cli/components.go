package cli

import (
	"fmt"

	"github.com/okometz/vantage/internal/registry"
	"github.com/spf13/cobra"
)

// componentsCmd represents the components command
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the component types Vantage can compose",
	Long: `List every component type in the rendering registry, with its default
grid span. Compositions only ever reference these types; anything else
in a document is skipped at placement time.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range registry.Types() {
			c, _ := registry.Lookup(t)
			fmt.Printf("%-22s %-8s %s\n", t, c.Span, c.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}
