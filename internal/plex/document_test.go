package plex_test

import (
	"bytes"
	"errors"
	"testing"

	"plexquery/internal/plex"
)

func TestParseDocumentKeepsOrder(t *testing.T) {
	doc := mustParse(t, `<?xml version="1.0"?>
<MediaContainer size="3" b="2" a="1">
  <Video title="one"/>
  <Directory title="two"/>
  <Video title="three"/>
</MediaContainer>`)

	if doc.Tag() != "MediaContainer" {
		t.Fatalf("unexpected root tag %q", doc.Tag())
	}
	attrs := doc.Attrs()
	want := []string{"size", "b", "a"}
	if len(attrs) != len(want) {
		t.Fatalf("expected %d attrs, got %v", len(want), attrs)
	}
	for i, name := range want {
		if attrs[i].Name != name {
			t.Fatalf("attr %d: got %q want %q", i, attrs[i].Name, name)
		}
	}

	if doc.Len() != 3 {
		t.Fatalf("expected 3 children, got %d", doc.Len())
	}
	for i, title := range []string{"one", "two", "three"} {
		child, ok := doc.ChildAt(i)
		if !ok {
			t.Fatalf("ChildAt(%d) missing", i)
		}
		if got, _ := child.Attr("title"); got != title {
			t.Fatalf("child %d: got title %q want %q", i, got, title)
		}
	}
	if _, ok := doc.ChildAt(3); ok {
		t.Fatal("ChildAt past the end should report false")
	}
	if _, ok := doc.ChildAt(-1); ok {
		t.Fatal("negative ChildAt should report false")
	}
	if got := len(doc.ChildrenByTag("Video")); got != 2 {
		t.Fatalf("expected 2 Video children, got %d", got)
	}
}

func TestParseDocumentDecodesEntitiesAndText(t *testing.T) {
	doc := mustParse(t, `<Setting id="a&amp;b"><Label> Friendly name </Label></Setting>`)
	if got, _ := doc.Attr("id"); got != "a&b" {
		t.Fatalf("expected unescaped attribute, got %q", got)
	}
	label, ok := doc.Child("Label")
	if !ok {
		t.Fatal("expected Label child")
	}
	if label.Text() != "Friendly name" {
		t.Fatalf("expected trimmed text, got %q", label.Text())
	}
}

func TestParseDocumentRejectsMalformedInput(t *testing.T) {
	inputs := map[string]string{
		"empty":       "",
		"unclosed":    "<MediaContainer><Video>",
		"mismatched":  "<MediaContainer></Video>",
		"not xml":     "plex is down",
		"bad attr":    `<MediaContainer size=3/>`,
		"stray close": "</MediaContainer>",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := plex.ParseDocument([]byte(input))
			if !errors.Is(err, plex.ErrMalformedDocument) {
				t.Fatalf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestDocumentAccessorsReturnCopies(t *testing.T) {
	doc := mustParse(t, `<MediaContainer a="1"><Video/></MediaContainer>`)

	attrs := doc.Attrs()
	attrs[0].Value = "changed"
	if got, _ := doc.Attr("a"); got != "1" {
		t.Fatalf("attribute mutated through copy: %q", got)
	}

	children := doc.Children()
	children[0] = nil
	if child, _ := doc.ChildAt(0); child == nil {
		t.Fatal("child list mutated through copy")
	}
}

func TestDocumentXMLRoundTrip(t *testing.T) {
	original := mustParse(t, `<MediaContainer size="2"><Video title="Doors &amp; Corners" index="2"><Media id="1"><Part file="/a.mkv"/></Media></Video><Directory key="1">text</Directory></MediaContainer>`)

	encoded, err := original.XML()
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	reparsed, err := plex.ParseDocument(encoded)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	again, err := reparsed.XML()
	if err != nil {
		t.Fatalf("XML after reparse: %v", err)
	}
	if !bytes.Equal(encoded, again) {
		t.Fatalf("round trip changed output:\n%s\n%s", encoded, again)
	}
	dir, _ := reparsed.Child("Directory")
	if dir.Text() != "text" {
		t.Fatalf("expected text preserved, got %q", dir.Text())
	}
}

func TestNewDocumentDropsDuplicateAttributes(t *testing.T) {
	doc := plex.NewDocument("Video", []plex.Attr{{Name: "key", Value: "1"}, {Name: "key", Value: "2"}},
		plex.NewDocument("Media", nil), nil)
	if len(doc.Attrs()) != 1 {
		t.Fatalf("expected one attribute, got %v", doc.Attrs())
	}
	if got, _ := doc.Attr("key"); got != "1" {
		t.Fatalf("expected first value to win, got %q", got)
	}
	if doc.Len() != 1 {
		t.Fatalf("expected nil children skipped, got %d", doc.Len())
	}
}
