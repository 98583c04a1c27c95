package commands

import (
	"github.com/spf13/cobra"

	"github.com/quillorm/quill/cli/internal/ui"
)

const operatorReference = `# Lookup operators

| Lookup | SQL (sqlite) | Notes |
| --- | --- | --- |
| Eq / Ne | ` + "`= / !=`" + ` | direct comparison |
| IExact | ` + "`LOWER(f) = 'v'`" + ` | both operands lower-cased |
| Contains | ` + "`LIKE '%v%'`" + ` | substring, unanchored |
| StartsWith | ` + "`LIKE 'v%'`" + ` | prefix |
| EndsWith | ` + "`LIKE '%v'`" + ` | suffix |
| IContains / IStartsWith / IEndsWith | ` + "`LOWER(f) LIKE ...`" + ` | lower-cased on both sides |
| Regex / IRegex | ` + "`REGEXP`" + ` | raw pattern, no wildcards |
| Gt / Gte / Lt / Lte | ` + "`> >= < <=`" + ` | ordering |
| Between | ` + "`BETWEEN lo AND hi`" + ` | inclusive range |
| In / NotIn | ` + "`IN (...)`" + ` | set membership |
| IsNull / IsNotNull | ` + "`IS [NOT] NULL`" + ` | value ignored |

## Transforms

lower, upper, trim, length, year, month, day, week, weekday, quarter,
hour, minute, second, date, abs, ceil, floor, round.

Transforms chain; the first applied is innermost:
` + "`email.Lower().Contains(\"x\")`" + ` renders ` + "`LOWER(email) LIKE '%x%'`" + `.

On PostgreSQL the case-insensitive pattern variants use native ` + "`ILIKE`" + `
and IRegex uses ` + "`~*`" + `. IExact stays LOWER()-emulated equality on every
backend, so ` + "`%`" + ` and ` + "`_`" + ` in the value compare literally.
`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show the lookup operator reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.PrintMarkdown(operatorReference)
	},
}
