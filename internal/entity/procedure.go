package entity

import "github.com/google/uuid"

// ProcedureKind discriminates the two ways a procedure is identified: a
// reference to a clinic-defined priced template, or a freehand name typed by
// a human or emitted by OCR.
type ProcedureKind int

const (
	ProcedureTemplateRef ProcedureKind = iota
	ProcedureFreeText
)

// Procedure is the tagged variant behind every priced or displayed procedure.
// Code that prices or renders procedures switches on Kind so both cases stay
// explicitly handled.
type Procedure struct {
	kind       ProcedureKind
	templateID uuid.UUID
	name       string
}

// TemplateProcedure references a clinic template by id.
func TemplateProcedure(id uuid.UUID, name string) Procedure {
	return Procedure{kind: ProcedureTemplateRef, templateID: id, name: name}
}

// FreeTextProcedure wraps a freehand procedure name.
func FreeTextProcedure(name string) Procedure {
	return Procedure{kind: ProcedureFreeText, name: name}
}

func (p Procedure) Kind() ProcedureKind { return p.kind }

func (p Procedure) Name() string { return p.name }

// TemplateID returns the referenced template id and whether one is set.
func (p Procedure) TemplateID() (uuid.UUID, bool) {
	if p.kind != ProcedureTemplateRef {
		return uuid.Nil, false
	}
	return p.templateID, true
}

// Item builds the persisted line-item for this procedure at the given price.
// Discount never applies to OCR-derived lines.
func (p Procedure) Item(price float64) ProcedureItem {
	item := ProcedureItem{
		Name:        p.name,
		Price:       price,
		Discount:    0,
		FinalAmount: price,
	}
	if p.kind == ProcedureTemplateRef {
		id := p.templateID
		item.TemplateID = &id
	}
	return item
}
