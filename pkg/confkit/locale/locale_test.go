package locale

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultEnglish(t *testing.T) {
	tr := Default()

	tests := map[string]string{
		ButtonDone:     "Done",
		ButtonSave:     "Save",
		ToggleOn:       "On",
		UnsavedMessage: "Discard unsaved changes?",
	}
	for id, want := range tests {
		if got := tr.T(id); got != want {
			t.Errorf("T(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestGerman(t *testing.T) {
	tr, err := New("de-DE")
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	if got := tr.T(ButtonSave); got != "Speichern" {
		t.Errorf("T(ButtonSave) = %q, want Speichern", got)
	}
	if got := tr.Language(); got != language.German {
		t.Errorf("Language() = %v, want de", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	tr, err := New("fr")
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if got := tr.T(ButtonDone); got != "Done" {
		t.Errorf("T(ButtonDone) = %q, want Done", got)
	}
	if got := tr.Language(); got != language.English {
		t.Errorf("Language() = %v, want en", got)
	}
}

func TestMissingIDPassesThrough(t *testing.T) {
	tr := Default()
	if got := tr.T("Screen Brightness"); got != "Screen Brightness" {
		t.Errorf("T = %q, want the id back", got)
	}

	var nilTr *Translator
	if got := nilTr.T(ButtonDone); got != ButtonDone {
		t.Errorf("nil translator T = %q, want %q", got, ButtonDone)
	}
}

func TestAddMessages(t *testing.T) {
	tr, err := New("en")
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	if err := tr.AddMessages(language.English, map[string]string{
		"Volume":   "Volume",
		"Greeting": "Hello {{.Name}}",
	}); err != nil {
		t.Fatalf("AddMessages error = %v", err)
	}

	if got := tr.Tf("Greeting", map[string]any{"Name": "Ada"}); got != "Hello Ada" {
		t.Errorf("Tf = %q, want Hello Ada", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "active.fr.toml")
	if err := os.WriteFile(file, []byte("[ButtonDone]\nother = \"Terminé\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := New("fr")
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if err := tr.LoadFile(file); err != nil {
		t.Fatalf("LoadFile error = %v", err)
	}

	if got := tr.T(ButtonDone); got != "Terminé" {
		t.Errorf("T(ButtonDone) = %q, want Terminé", got)
	}
	if got := tr.T(ButtonSave); got != "Save" {
		t.Errorf("T(ButtonSave) = %q, want English fallback", got)
	}
}
