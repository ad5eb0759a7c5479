package gen

import (
	"fmt"
	"strconv"

	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/orchestra"
	"fixdict-generator/internal/sanitize"
)

// messageData is the template view of one message.
type messageData struct {
	TypeName  string
	ConstName string
	RawName   string
	Name      string
	MsgType   string
	Category  string
	Synopsis  string
	Pedigree  pedigreeData
	FieldsVar string
	Usages    []usageData
}

// usageData is one record of a message's Fields() list.
type usageData struct {
	FieldType string
	Presence  string
	Depth     int
}

// buildMessage prepares one message for emission. fieldTypes maps tags to the
// generated field type names. It returns false when the message cannot be
// emitted; the reason is recorded as an error diagnostic.
func (g *Generator) buildMessage(
	m *orchestra.Model,
	msg *orchestra.Message,
	fieldTypes map[int]string,
) (messageData, bool) {
	subject := "message " + msg.Name

	base := exportedIdent(msg.Name)
	if base == "" {
		g.diags.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("name %q has no usable identifier characters", msg.Name), subject, "")

		return messageData{}, false
	}

	usages, err := m.MessageFields(msg)
	if err != nil {
		g.diags.AddError(diagnostic.CodeMessageFields, err.Error(), subject, "")
		return messageData{}, false
	}

	data := messageData{
		TypeName:  base + "Message",
		ConstName: base + "MsgType",
		RawName:   sanitize.Literal(msg.Name),
		Name:      strconv.Quote(msg.Name),
		MsgType:   strconv.Quote(msg.MsgType),
		Category:  strconv.Quote(msg.Category),
		Synopsis:  literal(msg.Synopsis),
		Pedigree:  pedigreeOf(msg.Pedigree),
		FieldsVar: "fields_" + base,
		Usages:    make([]usageData, 0, len(usages)),
	}

	g.declare(data.TypeName, subject)
	g.declare(data.ConstName, subject)
	g.declare(data.FieldsVar, subject)

	ok := true

	for i, u := range usages {
		path := fmt.Sprintf("#%d %s", i, u.Field.Name)

		fieldType, known := fieldTypes[u.Field.ID]
		if !known {
			g.diags.AddError(diagnostic.CodeMessageFields,
				fmt.Sprintf("field tag %d was not emitted", u.Field.ID), subject, path)

			ok = false

			continue
		}

		if !u.Presence.IsValid() {
			g.diags.AddError(diagnostic.CodeMessageFields,
				fmt.Sprintf("invalid presence %d", int(u.Presence)), subject, path)

			ok = false

			continue
		}

		data.Usages = append(data.Usages, usageData{
			FieldType: fieldType,
			Presence:  "Presence" + u.Presence.String(),
			Depth:     u.Depth,
		})
	}

	return data, ok
}
