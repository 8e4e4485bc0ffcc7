package effect

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/flarebyte/greet/internal/randsrc"
)

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestAddConfetti_WrapsText(t *testing.T) {
	src := randsrc.New(3)
	for _, text := range []string{"Hello, World!", "", "こんにちは"} {
		got := AddConfetti(src, text)
		require.Contains(t, got, text)
		require.Equal(t, utf8.RuneCountInString(text)+8, utf8.RuneCountInString(got))
		require.Equal(t, " "+text+" ", string([]rune(got)[3:3+utf8.RuneCountInString(text)+2]))
	}
}

func TestAddConfetti_UsesGlyphSet(t *testing.T) {
	got := AddConfetti(&randsrc.Sequence{Values: []int{0, 1, 2, 3, 4, 5}}, "x")
	require.Equal(t, "🎉🎊✨ x 🎈🎆🎇", got)
}

func TestAddConfetti_SameSeedSameOutput(t *testing.T) {
	require.Equal(t, AddConfetti(randsrc.New(42), "Hello"), AddConfetti(randsrc.New(42), "Hello"))
}

func TestRandomColor_FromPalette(t *testing.T) {
	require.Len(t, Palette, 12)
	src := randsrc.New(11)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[RandomColor(src).Name] = true
	}
	require.Greater(t, len(seen), 1)
	for name := range seen {
		found := false
		for _, c := range Palette {
			if c.Name == name {
				found = true
			}
		}
		require.True(t, found, name)
	}
}

func TestGraphemes_KeepsClustersWhole(t *testing.T) {
	require.Equal(t, []string{"🇯🇵", " ", "a"}, Graphemes("🇯🇵 a"))
	require.Equal(t, []string{"👩‍👩‍👧"}, Graphemes("👩‍👩‍👧"))
	require.Equal(t, []string{"é", "!"}, Graphemes("é!"))
	require.Nil(t, Graphemes(""))
}

func TestRainbow_NoColorIsIdentity(t *testing.T) {
	require.Equal(t, "🇫🇷 Bonjour", Rainbow(plainRenderer(), "🇫🇷 Bonjour", false))
}

func TestRainbow_OneSpanPerGrapheme(t *testing.T) {
	text := "🇯🇵 Hi"
	got := Rainbow(colorRenderer(), text, true)
	require.Equal(t, text, StripANSI(got))
	require.Contains(t, got, "🇯🇵")
	require.Equal(t, 3, strings.Count(got, "\x1b[0m"))
	require.Contains(t, got, "\x1b[31m🇯🇵")
	require.Contains(t, got, "\x1b[32mH")
	require.Contains(t, got, "\x1b[33mi")
}

func TestTypewriter_WritesEachGraphemeThenNewline(t *testing.T) {
	var buf bytes.Buffer
	var pauses []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}
	err := Typewriter(context.Background(), &buf, "🇬🇧 Hi", 5*time.Millisecond, sleep)
	require.NoError(t, err)
	require.Equal(t, "🇬🇧 Hi\n", buf.String())
	require.Len(t, pauses, 4)
	require.Equal(t, 5*time.Millisecond, pauses[0])
}

func TestTypewriter_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	sleep := func(ctx context.Context, d time.Duration) error {
		cancel()
		return nil
	}
	err := Typewriter(ctx, &buf, "abc", time.Millisecond, sleep)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, "a", buf.String())
}

func TestSleep_HonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, Sleep(ctx, time.Hour))
}

func TestCowsay_Empty(t *testing.T) {
	got := Cowsay("")
	require.NotEmpty(t, got)
	require.Contains(t, got, "<")
	require.Contains(t, got, "(oo)")
	require.True(t, strings.HasPrefix(got, " __\n<  >\n --\n"))
}

func TestCowsay_SingleLine(t *testing.T) {
	got := Cowsay("Hello")
	lines := strings.Split(got, "\n")
	require.Equal(t, " _______", lines[0])
	require.Equal(t, "< Hello >", lines[1])
	require.Equal(t, " -------", lines[2])
	require.Len(t, lines, 8)
	require.False(t, strings.HasSuffix(got, "\n"))
}

func TestCowsay_MultiLine(t *testing.T) {
	lines := strings.Split(Cowsay("A\nBB"), "\n")
	require.Equal(t, " ____", lines[0])
	require.Len(t, lines[1], 2+4)
	require.Equal(t, `/ A  \`, lines[1])
	require.Equal(t, `\ BB /`, lines[2])
	require.Equal(t, " ----", lines[3])
}

func TestCowsay_InteriorLines(t *testing.T) {
	lines := strings.Split(Cowsay("one\ntwo\nthree"), "\n")
	require.Equal(t, `/ one   \`, lines[1])
	require.Equal(t, `| two   |`, lines[2])
	require.Equal(t, `\ three /`, lines[3])
}

func TestCowsay_IgnoresColorInWidth(t *testing.T) {
	lines := strings.Split(Cowsay("\x1b[32mHi\x1b[0m\nabc"), "\n")
	require.Equal(t, " _____", lines[0])
	require.Equal(t, "/ \x1b[32mHi\x1b[0m  \\", lines[1])
}

func TestBox_PlainBorder(t *testing.T) {
	got := Box(plainRenderer(), "Hello", false)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "╭───────╮", lines[0])
	require.Equal(t, "│ Hello │", lines[1])
	require.Equal(t, "╰───────╯", lines[2])
}

func TestBox_ColoredBorderKeepsContent(t *testing.T) {
	got := Box(colorRenderer(), "Hello", true)
	require.Contains(t, got, "Hello")
	require.Contains(t, got, "\x1b[")
	require.Equal(t, "│ Hello │", strings.Split(StripANSI(got), "\n")[1])
}

func TestTextStyle_KeepsTabs(t *testing.T) {
	require.Equal(t, "A\tB", TextStyle(plainRenderer()).Foreground(Green.Lipgloss()).Render("A\tB"))
	require.Contains(t, TextStyle(colorRenderer()).Foreground(Green.Lipgloss()).Render("A\tB"), "A\tB")
	require.Contains(t, StripANSI(Rainbow(colorRenderer(), "A\tB", true)), "A\tB")
	require.Contains(t, Box(plainRenderer(), "A\tB", false), "A\tB")
}
