package hostedpay

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"plain ascii":          {"Kahvimuki", "Kahvimuki"},
		"folded lowercase":     {"Käsintehty öljy ja hår", "Kasintehty oljy ja har"},
		"uppercase keeps name": {"Åke Öhman Ärrä", "&Aring;ke &Ouml;hman &Auml;rra"},
		"reserved characters":  {`a & b <c> "d" 'e'`, "a &amp; b &lt;c&gt; &quot;d&quot; &apos;e&apos;"},
		"other latin-1":        {"café £5 ©", "caf&eacute; &pound;5 &copy;"},
		"typographic":          {"Hinta 10 € – ale…", "Hinta 10 &euro; &ndash; ale&hellip;"},
		"unnamed passes":       {"Ω≠ŋ", "&Omega;&ne;ŋ"},
		"empty":                {"", ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFoldsBeforeEscaping(t *testing.T) {
	t.Parallel()

	if got := EscapeEntities("ä"); got != "&auml;" {
		t.Fatalf("EscapeEntities(ä) = %q", got)
	}
	if got := Normalize("ä"); got != "a" {
		t.Fatalf("Normalize(ä) = %q", got)
	}
	if got := FoldDiacritics("ÅÄÖåäö"); got != "ÅÄÖaao" {
		t.Fatalf("FoldDiacritics = %q", got)
	}
}

func TestNormalizeIsNotIdempotentOnAmpersand(t *testing.T) {
	t.Parallel()

	once := Normalize("&")
	if twice := Normalize(once); twice != "&amp;amp;" {
		t.Fatalf("unexpected double normalization %q", twice)
	}
}
