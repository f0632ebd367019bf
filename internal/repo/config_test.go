package repo

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/store/jsonfile"
)

func newConfigRepo(t *testing.T) *Config {
	t.Helper()
	st, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("jsonfile.New() error = %v", err)
	}
	return NewConfig(st)
}

func TestResume_RoundTrip(t *testing.T) {
	r := newConfigRepo(t)

	value := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
	if err := r.SetResume(value); err != nil {
		t.Fatalf("SetResume() error = %v", err)
	}

	got, err := r.GetResume()
	if err != nil {
		t.Fatalf("GetResume() error = %v", err)
	}
	if got != value {
		t.Errorf("GetResume() = %q, want stored value unchanged", got)
	}
}

func TestSetResume_RejectsEmpty(t *testing.T) {
	r := newConfigRepo(t)
	if err := r.SetResume(""); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("SetResume(\"\") error = %v, want ErrValidation", err)
	}
}

func TestGetResume_AbsentIsNotFound(t *testing.T) {
	r := newConfigRepo(t)

	_, err := r.GetResume()
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetResume() on empty store error = %v, want ErrNotFound", err)
	}
	// absent must never surface as a decode failure
	if errors.Is(err, apperr.ErrDecode) {
		t.Errorf("GetResume() on empty store reported ErrDecode")
	}

	_, err = r.ResumePDF()
	if !errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrDecode) {
		t.Errorf("ResumePDF() on empty store error = %v, want plain ErrNotFound", err)
	}
}

func TestResumePDF_StripsDataURI(t *testing.T) {
	r := newConfigRepo(t)

	pdf := []byte("%PDF-1.4 fake document")
	stored := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdf)
	if err := r.SetResume(stored); err != nil {
		t.Fatalf("SetResume() error = %v", err)
	}

	raw, err := r.ResumePDF()
	if err != nil {
		t.Fatalf("ResumePDF() error = %v", err)
	}
	if string(raw) != string(pdf) {
		t.Errorf("ResumePDF() = %q, want bytes after base64, marker", raw)
	}
}

func TestResumePDF_PlainBase64(t *testing.T) {
	r := newConfigRepo(t)

	pdf := []byte("%PDF-1.4")
	if err := r.SetResume(base64.StdEncoding.EncodeToString(pdf)); err != nil {
		t.Fatalf("SetResume() error = %v", err)
	}

	raw, err := r.ResumePDF()
	if err != nil {
		t.Fatalf("ResumePDF() error = %v", err)
	}
	if string(raw) != string(pdf) {
		t.Errorf("ResumePDF() = %q, want %q", raw, pdf)
	}
}

func TestResumePDF_CorruptIsDecodeError(t *testing.T) {
	r := newConfigRepo(t)

	// stores fine (read path does not decode), fails only on decode
	if err := r.SetResume("not*valid*base64!"); err != nil {
		t.Fatalf("SetResume() error = %v", err)
	}
	if _, err := r.GetResume(); err != nil {
		t.Fatalf("GetResume() on corrupt payload error = %v, want nil (decode is lazy)", err)
	}

	_, err := r.ResumePDF()
	if !errors.Is(err, apperr.ErrDecode) {
		t.Errorf("ResumePDF() error = %v, want ErrDecode", err)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("corrupt resume also reported ErrNotFound; kinds must stay distinct")
	}
}
