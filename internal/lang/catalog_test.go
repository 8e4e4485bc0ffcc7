package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestAll_FixedOrderEnglishFirst(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("want 10 languages, got %d", len(all))
	}
	if all[0].Name != "English" {
		t.Fatalf("want English first, got %s", all[0].Name)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "Changed"
	if All()[0].Name != "English" {
		t.Fatalf("catalog mutated through All()")
	}
}

func TestCatalog_UniqueCodesAndNames(t *testing.T) {
	codes := map[string]bool{}
	names := map[string]bool{}
	for _, l := range All() {
		if codes[l.Code] {
			t.Fatalf("duplicate code %s", l.Code)
		}
		if names[fold(l.Name)] {
			t.Fatalf("duplicate name %s", l.Name)
		}
		codes[l.Code] = true
		names[fold(l.Name)] = true
	}
}

func TestCatalog_TemplatesHaveSinglePlaceholder(t *testing.T) {
	for _, l := range All() {
		if n := strings.Count(l.GreetingTemplate, Placeholder); n != 1 {
			t.Fatalf("%s: want 1 placeholder, got %d", l.Name, n)
		}
		if l.FlagEmoji == "" || l.BannerName == "" {
			t.Fatalf("%s: missing flag or banner name", l.Name)
		}
	}
}

func TestFindByName_CaseInsensitive(t *testing.T) {
	for _, n := range []string{"ENGLISH", "English", "english", "eNgLiSh"} {
		l, err := FindByName(n)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", n, err)
		}
		if l.Code != "en" {
			t.Fatalf("%s: want en, got %s", n, l.Code)
		}
	}
}

func TestFindByName_NotFound(t *testing.T) {
	_, err := FindByName("klingon")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if nf.Name != "klingon" {
		t.Fatalf("unexpected name %q", nf.Name)
	}
}

func TestFindByCode(t *testing.T) {
	l, err := FindByCode("JA")
	if err != nil || l.Name != "Japanese" {
		t.Fatalf("want Japanese, got %v %v", l, err)
	}
	if _, err := FindByCode("xx"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNames_SortedAlphabetically(t *testing.T) {
	got := strings.Join(Names(), ",")
	want := "Arabic,English,French,German,Hindi,Japanese,Mandarin,Portuguese,Spanish,Swahili"
	if got != want {
		t.Fatalf("want %s\n got %s", want, got)
	}
}
