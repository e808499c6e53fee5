package docs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/schmitthub/stubkit/internal/script"
)

// GenContractReference writes a Markdown page describing every scenario
// script contract: its Go interface, call-line members and presets.
func GenContractReference(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("## Scenario script contracts\n\n")
	buf.WriteString("Each scenario script names one contract. Presets are applied in the\n")
	buf.WriteString("order listed in the script, then overrides are assigned.\n\n")

	for _, name := range script.ContractNames() {
		c, err := script.LookupContract(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "### %s\n\nImplements `%s`.\n\n", c.Name(), c.Interface())

		buf.WriteString("Call lines:\n\n")
		for _, m := range c.Members() {
			fmt.Fprintf(&buf, "* `%s`\n", m)
		}
		buf.WriteString("\n| Preset | Effect |\n|---|---|\n")
		for _, p := range c.Presets() {
			fmt.Fprintf(&buf, "| `%s` | %s |\n", p.Name, p.Description)
		}
		buf.WriteString("\n")
	}

	_, err := buf.WriteTo(w)
	return err
}
