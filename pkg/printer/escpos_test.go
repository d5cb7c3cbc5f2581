package printer_test

import (
	"bytes"
	"testing"

	"github.com/supthawee/farmgate-api/pkg/printer"
)

func TestDocumentStartsWithInit(t *testing.T) {
	d := printer.NewDocument(42)
	out := d.Bytes()

	if !bytes.HasPrefix(out, []byte{printer.ESC, '@'}) {
		t.Errorf("document does not start with ESC @: % x", out[:2])
	}
}

func TestDocumentTextAndCommands(t *testing.T) {
	d := printer.NewDocument(42)
	d.SetCodePage(20).
		SetAlign(printer.AlignCenter).
		Text("hello").
		FeedLines(3).
		PartialCut()
	out := d.Bytes()

	for _, want := range [][]byte{
		{printer.ESC, 't', 20},
		{printer.ESC, 'a', byte(printer.AlignCenter)},
		append([]byte("hello"), printer.LF),
		{printer.LF, printer.LF, printer.LF},
		{printer.GS, 'V', 0x01},
	} {
		if !bytes.Contains(out, want) {
			t.Errorf("output missing % x", want)
		}
	}
}

func TestKeyValuePadsToWidth(t *testing.T) {
	d := printer.NewDocument(20)
	d.Reset()
	d.KeyValue("Total", "500")
	out := d.Bytes()

	line := bytes.TrimPrefix(out, []byte{printer.ESC, '@'})
	line = bytes.TrimSuffix(line, []byte{printer.LF})
	if len(line) != 20 {
		t.Errorf("line width = %d, want 20: %q", len(line), line)
	}
	if !bytes.HasPrefix(line, []byte("Total")) || !bytes.HasSuffix(line, []byte("500")) {
		t.Errorf("line = %q, want key left and value right", line)
	}
}

func TestKeyValueKeepsOneSpaceWhenOverflowing(t *testing.T) {
	d := printer.NewDocument(8)
	d.Reset()
	d.KeyValue("LongKeyName", "99999")
	out := d.Bytes()

	if !bytes.Contains(out, []byte("LongKeyName 99999")) {
		t.Errorf("overflowing key/value not separated by a single space: %q", out)
	}
}

func TestSeparatorUsesConfiguredWidth(t *testing.T) {
	d := printer.NewDocument(10)
	d.Reset()
	d.Separator('-')
	out := d.Bytes()

	if !bytes.Contains(out, append(bytes.Repeat([]byte{'-'}, 10), printer.LF)) {
		t.Errorf("separator line wrong: %q", out)
	}
}

func TestResetClearsBuffer(t *testing.T) {
	d := printer.NewDocument(42)
	d.Text("stale")
	d.Reset()
	out := d.Bytes()

	if bytes.Contains(out, []byte("stale")) {
		t.Errorf("reset kept old content: %q", out)
	}
	if !bytes.Equal(out, []byte{printer.ESC, '@'}) {
		t.Errorf("reset document = % x, want bare init", out)
	}
}
