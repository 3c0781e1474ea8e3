package dialect

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

func newTestResolver(goos string) *Resolver {
	r := NewResolver()
	r.GOOS = goos
	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Dialect
	}{
		{"", Native},
		{"php", Native},
		{"ICU", ICU},
		{"carbon", Carbon},
		{"clib", CLib},
		{"strftime", CLib},
		{"moment", Moment},
		{"yii2", Yii2},
		{"go", GoLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if _, err := Parse("klingon"); !errors.Is(err, cerrors.ErrUnknownDialect) {
		t.Fatalf("Parse(klingon) error = %v, want ErrUnknownDialect", err)
	}
}

func TestDialect_StringParsesBack(t *testing.T) {
	for _, d := range Dialects {
		got, err := Parse(d.String())
		if err != nil || got != d {
			t.Errorf("Parse(%q) = %v, %v; want %v", d.String(), got, err, d)
		}
	}
}

func TestResolveAlias(t *testing.T) {
	r := newTestResolver("linux")

	tests := []struct {
		name   string
		in     string
		locale string
		want   string
	}{
		{"default locale", "date_time", "", "n/j/Y g:i:s A"},
		{"sk group", "date_time", "sk", "j.n.Y H:i:s"},
		{"region suffix", "date", "cs_CZ", "j.n.Y"},
		{"unknown locale falls back to en", "date", "ja", "n/j/Y"},
		{"literal passes through", "Y-m-d H:i:s", "sk", "Y-m-d H:i:s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ResolveAlias(tt.in, tt.locale); got != tt.want {
				t.Fatalf("ResolveAlias(%q, %q) = %q, want %q", tt.in, tt.locale, got, tt.want)
			}
		})
	}
}

func TestResolveAlias_IdempotentOnLiterals(t *testing.T) {
	r := newTestResolver("linux")
	for _, locale := range []string{"en", "sk"} {
		for _, name := range AliasNames(locale) {
			once := r.ResolveAlias(name, locale)
			if twice := r.ResolveAlias(once, locale); twice != once {
				t.Errorf("ResolveAlias(ResolveAlias(%q)) = %q, want %q", name, twice, once)
			}
		}
	}
}

func TestGet(t *testing.T) {
	r := newTestResolver("linux")

	tests := []struct {
		name   string
		format string
		target Dialect
		locale string
		want   string
	}{
		{"default locale without conversion", "date_time", Native, "", "n/j/Y g:i:s A"},
		{"sk without conversion", "date_time", Native, "sk", "j.n.Y H:i:s"},
		{"sk to icu", "date_time", ICU, "sk", "d.M.yyyy HH:mm:ss"},
		{"sk to moment", "date_time", Moment, "sk", "D.M.YYYY HH:mm:ss"},
		{"empty", "", ICU, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Get(tt.format, tt.target, tt.locale); got != tt.want {
				t.Fatalf("Get(%q, %v, %q) = %q, want %q", tt.format, tt.target, tt.locale, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	r := newTestResolver("linux")

	tests := []struct {
		name   string
		format string
		target Dialect
		locale string
		want   string
	}{
		{"alias to icu", "date", ICU, "", "M/d/yyyy"},
		{"sk alias to icu", "date", ICU, "sk", "d.M.yyyy"},
		{"sk alias to moment", "date", Moment, "sk", "D.M.YYYY"},
		{"literal to moment", "m/d/Y H:i:s", Moment, "", "MM/DD/YYYY HH:mm:ss"},
		{"yii2 is icu", "date_time", Yii2, "sk", "d.M.yyyy HH:mm:ss"},
		{"carbon", "l, j. F Y", Carbon, "", "dddd, D. MMMM YYYY"},
		{"go layout", "date_time", GoLayout, "", "1/2/2006 3:04:05 PM"},
		{"go layout with micros", "Y-m-d H:i:s.u P", GoLayout, "", "2006-01-02 15:04:05.000000 -07:00"},
		{"dropped token", "Y-m-d t", ICU, "", "yyyy-MM-dd "},
		{"native resolves alias only", "date", Native, "sk", "j.n.Y"},
		{"unknown letters pass through", "Y x", Moment, "", "YYYY x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Convert(tt.format, tt.target, tt.locale); got != tt.want {
				t.Fatalf("Convert(%q, %v, %q) = %q, want %q", tt.format, tt.target, tt.locale, got, tt.want)
			}
		})
	}
}

func TestConvert_CLib(t *testing.T) {
	tests := []struct {
		name  string
		goos  string
		strip bool
		get   bool
		want  string
	}{
		{"posix strips with dash", "linux", true, false, "%-e.%-m.%Y %H:%M:%S"},
		{"windows strips with hash", "windows", true, false, "%#e.%#m.%Y %H:%M:%S"},
		{"no stripping", "linux", false, false, "%e.%m.%Y %H:%M:%S"},
		{"windows get rewrites padded day", "windows", false, true, "%#d.%m.%Y %H:%M:%S"},
		{"windows get keeps stripped day", "windows", true, true, "%#e.%#m.%Y %H:%M:%S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.goos)
			r.StripLeadingZeros = tt.strip

			var got string
			if tt.get {
				got = r.Get("date_time", CLib, "sk")
			} else {
				got = r.Convert("date_time", CLib, "sk")
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertNamed_UnknownDialect(t *testing.T) {
	var buf bytes.Buffer
	r := newTestResolver("linux")
	r.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	got, err := r.ConvertNamed("date", "klingon", "sk")
	if err != nil {
		t.Fatalf("ConvertNamed() error = %v", err)
	}
	if got != "j.n.Y" {
		t.Fatalf("ConvertNamed() = %q, want %q", got, "j.n.Y")
	}
	if !strings.Contains(buf.String(), "unknown format dialect") {
		t.Fatalf("expected debug log, got %q", buf.String())
	}

	r.Strict = true
	_, err = r.ConvertNamed("date", "klingon", "sk")
	if !errors.Is(err, cerrors.ErrUnknownDialect) {
		t.Fatalf("strict ConvertNamed() error = %v, want ErrUnknownDialect", err)
	}
	if !cerrors.ContainsSuggestion(err) {
		t.Fatal("expected a suggestion on strict error")
	}
}

func TestConvertNamed_KnownDialect(t *testing.T) {
	r := newTestResolver("linux")
	got, err := r.ConvertNamed("date", "icu", "")
	if err != nil {
		t.Fatalf("ConvertNamed() error = %v", err)
	}
	if got != "M/d/yyyy" {
		t.Fatalf("ConvertNamed() = %q, want %q", got, "M/d/yyyy")
	}
}

func TestRewriteDirectives(t *testing.T) {
	got := rewriteDirectives("%%e %e %-e %m%", map[byte]string{'e': "%-e"})
	if want := "%%e %-e %-e %m%"; got != want {
		t.Fatalf("rewriteDirectives() = %q, want %q", got, want)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"en":          "en",
		"cs_CZ":       "cs",
		"SK-sk":       "sk",
		" de ":        "de",
		"fr_FR.UTF-8": "fr",
	}
	for in, want := range tests {
		if got := NormalizeLocale(in); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", in, got, want)
		}
	}
}
