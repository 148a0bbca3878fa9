package parser

import "testing"

func TestParseOneDeclarationString(t *testing.T) {
	d, err := ParseOneDeclaration(Tokenize([]byte("color: red"), true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "color" {
		t.Fatalf("got name %q", d.Name)
	}
	if d.Important {
		t.Fatalf("did not expect !important")
	}
}

func TestParseOneDeclarationImportant(t *testing.T) {
	d, err := ParseOneDeclaration(Tokenize([]byte("color: red !important"), true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Important {
		t.Fatalf("expected !important to be detected")
	}
}

func TestParseOneDeclarationRejectsEmptyInput(t *testing.T) {
	_, err := ParseOneDeclaration(nil)
	if err == nil {
		t.Fatalf("expected an error for empty input")
	}
}

func TestParseDeclarationListSplitsOnSemicolons(t *testing.T) {
	decls, errs := ParseDeclarationListString("color: red; width: 10px")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d: %v", len(decls), decls)
	}
	if decls[0].Name != "color" || decls[1].Name != "width" {
		t.Fatalf("got %q, %q", decls[0].Name, decls[1].Name)
	}
}

func TestParseDeclarationListDropsMalformedDeclarationAndContinues(t *testing.T) {
	decls, errs := ParseDeclarationListString(": red; width: 10px")
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if len(decls) != 1 || decls[0].Name != "width" {
		t.Fatalf("expected recovery to parse the remaining declaration, got %v", decls)
	}
}

func TestParseDeclarationListTrailingSemicolonIsIgnored(t *testing.T) {
	decls, errs := ParseDeclarationListString("color: red;;;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d: %v", len(decls), decls)
	}
}
