package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestTemplateProcedure(t *testing.T) {
	id := uuid.New()
	p := TemplateProcedure(id, "Filling")

	if p.Kind() != ProcedureTemplateRef {
		t.Errorf("kind = %v", p.Kind())
	}
	got, ok := p.TemplateID()
	if !ok || got != id {
		t.Errorf("TemplateID = %v, %v", got, ok)
	}

	item := p.Item(150)
	if item.TemplateID == nil || *item.TemplateID != id {
		t.Error("item must carry the template reference")
	}
	if item.Price != 150 || item.FinalAmount != 150 || item.Discount != 0 {
		t.Errorf("item pricing = %+v", item)
	}
}

func TestFreeTextProcedure(t *testing.T) {
	p := FreeTextProcedure("Root Canal Treatment")

	if p.Kind() != ProcedureFreeText {
		t.Errorf("kind = %v", p.Kind())
	}
	if _, ok := p.TemplateID(); ok {
		t.Error("free text must not report a template id")
	}

	item := p.Item(300)
	if item.TemplateID != nil {
		t.Error("item must not carry a template reference")
	}
	if item.Name != "Root Canal Treatment" {
		t.Errorf("name = %q", item.Name)
	}
}
