package format

import "testing"

func TestParseSVGWidthAndHeight(t *testing.T) {
	doc := `<svg width="200" height="100" xmlns="http://www.w3.org/2000/svg"></svg>`
	w, h, orientation, err := ParseSVG(newStream([]byte(doc)))
	if err != nil {
		t.Fatalf("ParseSVG() error = %v", err)
	}
	if w != 200 || h != 100 {
		t.Errorf("ParseSVG() = (%d, %d), want (200, 100)", w, h)
	}
	if orientation != 1 {
		t.Errorf("ParseSVG() orientation = %d, want 1", orientation)
	}
}

func TestParseSVGFallsBackToViewBox(t *testing.T) {
	doc := `<svg viewBox="0 0 300 150"></svg>`
	w, h, _, err := ParseSVG(newStream([]byte(doc)))
	if err != nil {
		t.Fatalf("ParseSVG() error = %v", err)
	}
	if w != 300 || h != 150 {
		t.Errorf("ParseSVG() = (%d, %d), want (300, 150)", w, h)
	}
}

func TestParseSVGWidthWithViewBoxRatio(t *testing.T) {
	doc := `<svg width="400" viewBox="0 0 200 100"></svg>`
	w, h, _, err := ParseSVG(newStream([]byte(doc)))
	if err != nil {
		t.Fatalf("ParseSVG() error = %v", err)
	}
	if w != 400 || h != 200 {
		t.Errorf("ParseSVG() = (%d, %d), want (400, 200)", w, h)
	}
}

func TestParseSVGNoUsableDimensionsErrors(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
	if _, _, _, err := ParseSVG(newStream([]byte(doc))); err == nil {
		t.Fatal("ParseSVG() expected error when no dimensions present")
	}
}

// The attribute scanner matches on substring containment, so an attribute
// like stroke-width is mistaken for width since the hyphen is not a word
// byte and resets the accumulated name before "width" is seen on its own.
func TestParseSVGStrokeWidthIsMistakenForWidth(t *testing.T) {
	doc := `<svg stroke-width="7" height="50"></svg>`
	w, h, _, err := ParseSVG(newStream([]byte(doc)))
	if err != nil {
		t.Fatalf("ParseSVG() error = %v", err)
	}
	if w != 7 || h != 50 {
		t.Errorf("ParseSVG() = (%d, %d), want (7, 50)", w, h)
	}
}
