package render

import (
	"testing"

	"github.com/matzehuels/hexgrid/pkg/errors"
)

func TestToPDFMissingConverter(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "hexgrid-test-no-such-converter"
	defer func() { rsvgBinary = old }()

	_, err := ToPDF([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if err == nil {
		t.Fatal("ToPDF should fail without a converter")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}
