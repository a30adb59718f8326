package bcdiag

import "testing"

func TestBuilderBuild(t *testing.T) {
	d := New().Error().Stage("parse").At(12).Message("unexpected %s", "token").Build()

	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want SeverityError", d.Severity)
	}

	if d.Stage != "parse" {
		t.Errorf("Stage = %q, want parse", d.Stage)
	}

	if d.Offset != 12 {
		t.Errorf("Offset = %d, want 12", d.Offset)
	}

	if d.Message != "unexpected token" {
		t.Errorf("Message = %q, want %q", d.Message, "unexpected token")
	}

	want := "error: parse (offset 12): unexpected token"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDiagnosticStringNoOffset(t *testing.T) {
	d := New().Warning().Stage("validate").Message("odd shape").Build()

	want := "warning: validate: odd shape"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCollectorHasErrors(t *testing.T) {
	var c Collector

	if c.HasErrors() {
		t.Fatal("empty collector reports errors")
	}

	c.Add(New().Info().Stage("parse").Message("noted").Build())
	if c.HasErrors() {
		t.Fatal("info-only collector reports errors")
	}

	c.Add(New().Error().Stage("parse").Message("bad").Build())
	if !c.HasErrors() {
		t.Fatal("collector with an error entry reports none")
	}

	if len(c.Items()) != 2 {
		t.Fatalf("len(Items()) = %d, want 2", len(c.Items()))
	}
}
