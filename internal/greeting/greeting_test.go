package greeting

import (
	"strings"
	"testing"

	"github.com/flarebyte/greet/internal/lang"
)

func TestGenerate_SubstitutesVerbatim(t *testing.T) {
	names := []string{"World", "", "{name}", "{{x}}", "Zoë", "👩‍👩‍👧", "🇯🇵", "李雷"}
	for _, l := range lang.All() {
		for _, n := range names {
			g := Generate(l, n)
			want := strings.Replace(l.GreetingTemplate, lang.Placeholder, n, 1)
			if g.Text != want {
				t.Fatalf("%s/%q: want %q got %q", l.Code, n, want, g.Text)
			}
			if !strings.Contains(g.Text, n) {
				t.Fatalf("%s/%q: name missing from %q", l.Code, n, g.Text)
			}
			if g.Language != l {
				t.Fatalf("language not carried")
			}
			if g.Banner != "" {
				t.Fatalf("banner should stay empty")
			}
		}
	}
}

func TestGenerate_English(t *testing.T) {
	l, _ := lang.FindByName("english")
	if got := Generate(l, "Alice").Text; got != "Hello, Alice!" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGenerate_BracesInNameNotReinterpreted(t *testing.T) {
	l, _ := lang.FindByName("french")
	if got := Generate(l, "{name}").Text; got != "Bonjour, {name} !" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGenerateAll_PreservesOrder(t *testing.T) {
	langs := lang.Resolve([]string{"spanish", "english"})
	gs := GenerateAll(langs, "Bob")
	if len(gs) != 2 || gs[0].Text != "¡Hola, Bob!" || gs[1].Text != "Hello, Bob!" {
		t.Fatalf("unexpected greetings: %+v", gs)
	}
	if out := GenerateAll(nil, "x"); len(out) != 0 {
		t.Fatalf("want empty, got %d", len(out))
	}
}
