package csvtext_test

import (
	"reflect"
	"strings"
	"testing"

	"canary_rental/internal/csvtext"
)

// serialize writes rows back out with the quoting the parser understands,
// so round-tripping can be asserted exactly.
func serialize(rows [][]string, delim byte) string {
	var b strings.Builder
	for _, row := range rows {
		for i, f := range row {
			if i > 0 {
				b.WriteByte(delim)
			}
			if strings.ContainsAny(f, string(delim)+"\"\n\r") {
				b.WriteByte('"')
				b.WriteString(strings.ReplaceAll(f, `"`, `""`))
				b.WriteByte('"')
			} else {
				b.WriteString(f)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRows_RoundTrip(t *testing.T) {
	cases := [][][]string{
		{{"a", "b", "c"}, {"1", "2", "3"}},
		{{"name", "addr"}, {`Bar "El Patio"`, "Calle Mayor; 5"}, {"multi\nline", "x"}},
		{{"único"}, {"ñoño"}},
		{{"trailing", ""}, {"", "leading"}},
	}
	for _, delim := range []byte{';', ','} {
		for _, rows := range cases {
			got := csvtext.Rows(serialize(rows, delim), delim)
			if !reflect.DeepEqual(got, rows) {
				t.Fatalf("delim %q: got %#v want %#v", delim, got, rows)
			}
		}
	}
}

func TestRows_CRLFAndBlankLines(t *testing.T) {
	in := "a;b\r\n1;2\r\n\r\n;\r\n3;4\n"
	want := [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
	if got := csvtext.Rows(in, ';'); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestRows_NoTrailingNewline(t *testing.T) {
	want := [][]string{{"a", "b"}, {"1", "2"}}
	if got := csvtext.Rows("a;b\n1;2", ';'); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestRows_EmbeddedNewlineAndEscapedQuote(t *testing.T) {
	in := "h1;h2\n\"line1\nline2\";\"say \"\"hi\"\"\"\n"
	want := [][]string{{"h1", "h2"}, {"line1\nline2", `say "hi"`}}
	if got := csvtext.Rows(in, ';'); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

// Unterminated quotes are not an error: the parser keeps consuming until
// input ends and yields best-effort fields.
func TestRows_UnterminatedQuoteIsLenient(t *testing.T) {
	in := "a;b\n\"oops;still same field\n1;2"
	got := csvtext.Rows(in, ';')
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %#v", got)
	}
	if got[1][0] != "oops;still same field\n1;2" {
		t.Fatalf("unexpected lenient field: %q", got[1][0])
	}
}

func TestRecords_HeaderZipAndBOM(t *testing.T) {
	in := "\uFEFFid;name\n1;Hotel Faro\n2\n"
	recs := csvtext.Records(in, ';')
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["id"] != "1" || recs[0]["name"] != "Hotel Faro" {
		t.Fatalf("unexpected record: %#v", recs[0])
	}
	// short row: missing columns become empty strings
	if recs[1]["id"] != "2" || recs[1]["name"] != "" {
		t.Fatalf("unexpected short record: %#v", recs[1])
	}
}

func TestRecords_Empty(t *testing.T) {
	if recs := csvtext.Records("", ';'); recs != nil {
		t.Fatalf("expected nil, got %#v", recs)
	}
}
