package gen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fixdict-generator/internal/common"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/orchestra"
	"fixdict-generator/internal/tagindex"
)

// lookupRowWidth is the number of lookup entries per generated line.
const lookupRowWidth = 16

// accessorIdents are the top-level names every generated file declares.
var accessorIdents = []string{
	"fieldLookup",
	"fieldCollection",
	"Fields",
	"messageCollection",
	"Messages",
	"orchestration",
	"orchestrationDescriptor",
	"Orchestration",
}

// buildLookup computes the sparse lookup table of fields, which must be in
// ascending tag order, and renders it as rows of array elements.
func (g *Generator) buildLookup(fields []*orchestra.Field) ([]string, error) {
	table, err := tagindex.Build(fields, func(f *orchestra.Field) int { return f.ID }, nil)
	if err != nil {
		g.diags.AddError(diagnostic.CodeTagOrder, err.Error(), "fields", "")
		return nil, fmt.Errorf("building tag index: %w", err)
	}

	if table.Len() > math.MaxUint16 {
		g.diags.AddError(diagnostic.CodeTableOverflow,
			fmt.Sprintf("%d fields do not fit a uint16 lookup table", table.Len()), "fields", "")

		return nil, fmt.Errorf("building tag index: %d fields: %w", table.Len(), ErrTableOverflow)
	}

	rows := common.Chunk(table.Lookup, lookupRowWidth)
	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		var b strings.Builder

		for i, pos := range row {
			if i > 0 {
				b.WriteByte(' ')
			}

			b.WriteString(strconv.Itoa(pos))
			b.WriteByte(',')
		}

		lines = append(lines, b.String())
	}

	return lines, nil
}

// declare registers a top-level identifier of the generated file. A name
// declared twice is an error diagnostic naming both owners.
func (g *Generator) declare(ident, subject string) {
	if owner, exists := g.idents[ident]; exists {
		g.diags.AddError(diagnostic.CodeCollision,
			fmt.Sprintf("identifier %s is already declared by %s", ident, owner), subject, ident)

		return
	}

	g.idents[ident] = subject
}

func (g *Generator) declareAccessors() {
	for _, ident := range accessorIdents {
		g.declare(ident, "collection accessors")
	}
}
