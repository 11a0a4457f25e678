package validate_test

import (
	"strings"
	"testing"

	"github.com/pauloatx/page-teste02/internal/validate"
)

func fieldsOf(errs []validate.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func hasField(errs []validate.FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestCheck_Valid(t *testing.T) {
	sub := validate.Submission{
		Name:               "Jo Silva",
		Email:              "jo@example.com",
		ServiceDescription: "Instalação elétrica completa",
	}

	if errs := validate.Check(&sub); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCheck_ShortName(t *testing.T) {
	sub := validate.Submission{
		Name:               "Jo",
		Email:              "a@b.com",
		ServiceDescription: "long enough description",
	}

	errs := validate.Check(&sub)
	if len(errs) != 1 || errs[0].Field != "name" {
		t.Fatalf("expected single name error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "at least 3") {
		t.Fatalf("expected message to mention the length constraint, got %q", errs[0].Message)
	}
}

func TestCheck_CollectsAllFailures(t *testing.T) {
	sub := validate.Submission{
		Name:               "Jo",
		Email:              "not-an-email",
		ServiceDescription: "shor",
	}

	errs := validate.Check(&sub)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	for _, f := range []string{"name", "email", "serviceDescription"} {
		if !hasField(errs, f) {
			t.Fatalf("missing error for %s in %v", f, fieldsOf(errs))
		}
	}
}

func TestCheck_TrimsBeforeLengthCheck(t *testing.T) {
	sub := validate.Submission{
		Name:               "  Jo  ",
		Email:              " jo@example.com ",
		ServiceDescription: "   abc   ",
	}

	errs := validate.Check(&sub)
	if !hasField(errs, "name") {
		t.Fatalf("expected padded 2-char name to fail, got %v", errs)
	}
	if !hasField(errs, "serviceDescription") {
		t.Fatalf("expected padded 3-char description to fail, got %v", errs)
	}
	if hasField(errs, "email") {
		t.Fatalf("expected padded email to pass after trim, got %v", errs)
	}
}

func TestCheck_BadServiceDate(t *testing.T) {
	sub := validate.Submission{
		Name:               "Jo Silva",
		Email:              "jo@example.com",
		ServiceDescription: "pintura de fachada",
		ServiceDate:        "12/03/2025",
	}

	errs := validate.Check(&sub)
	if len(errs) != 1 || errs[0].Field != "serviceDate" {
		t.Fatalf("expected serviceDate error, got %v", errs)
	}
}

func TestCheck_EmptyServiceDateAllowed(t *testing.T) {
	sub := validate.Submission{
		Name:               "Jo Silva",
		Email:              "jo@example.com",
		ServiceDescription: "pintura de fachada",
	}

	if errs := validate.Check(&sub); len(errs) != 0 {
		t.Fatalf("expected omitted serviceDate to be accepted, got %v", errs)
	}
}

func TestRecord_EscapesAndNormalizes(t *testing.T) {
	phone := ` <11> 99999-0000 `
	sub := validate.Submission{
		Name:               `Jo <b>Silva</b>`,
		Email:              "Jo.Silva@Example.COM",
		Phone:              &phone,
		ServiceDescription: `troca de "fiação" & tomadas`,
		ServiceDate:        "2025-03-12",
	}

	if errs := validate.Check(&sub); len(errs) != 0 {
		t.Fatalf("expected valid submission, got %v", errs)
	}

	sr := sub.Record()
	if strings.ContainsAny(sr.Name, "<>") {
		t.Fatalf("name not escaped: %q", sr.Name)
	}
	if !strings.Contains(sr.Name, "&lt;b&gt;") {
		t.Fatalf("expected entity-escaped name, got %q", sr.Name)
	}
	if sr.Email != "jo.silva@example.com" {
		t.Fatalf("expected canonical email, got %q", sr.Email)
	}
	if sr.Phone == nil || strings.ContainsAny(*sr.Phone, "<>") {
		t.Fatalf("phone not escaped: %v", sr.Phone)
	}
	if !strings.Contains(sr.ServiceDescription, "&#34;") || !strings.Contains(sr.ServiceDescription, "&amp;") {
		t.Fatalf("description not escaped: %q", sr.ServiceDescription)
	}
	if sr.ServiceDate != "2025-03-12" {
		t.Fatalf("unexpected date %q", sr.ServiceDate)
	}
}

func TestRecord_EmptyPhoneStaysNil(t *testing.T) {
	empty := "   "
	sub := validate.Submission{
		Name:               "Jo Silva",
		Email:              "jo@example.com",
		Phone:              &empty,
		ServiceDescription: "manutenção geral",
	}

	if errs := validate.Check(&sub); len(errs) != 0 {
		t.Fatalf("expected valid submission, got %v", errs)
	}
	if sr := sub.Record(); sr.Phone != nil {
		t.Fatalf("expected blank phone to become nil, got %q", *sr.Phone)
	}
}
