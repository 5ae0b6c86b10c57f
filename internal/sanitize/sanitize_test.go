package sanitize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "Mesa de dulces", "Mesa de dulces"},
		{"accents unchanged", "García Núñez", "García Núñez"},
		{"empty input", "", ""},
		{"script tag and content removed", "<script>alert(1)</script>", ""},
		{"entity-encoded markup removed", "&lt;b&gt;", ""},
		{"simple tags unwrapped", "<b>Boda</b>", "Boda"},
		{"attributes removed with tag", `<a href="http://evil">DJ</a>`, "DJ"},
		{"nested markup", "<div><p>XV años</p></div>", "XV años"},
		{"style content dropped", "<style>p{color:red}</style>Foto", "Foto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"Mesa de dulces",
		"<script>alert(1)</script>",
		"&lt;b&gt;",
		"<b>Boda</b> con <i>vals</i>",
		"Tom & Jerry",
		"",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
