package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportFinalize(t *testing.T) {
	tmpDir := t.TempDir()

	stored := filepath.Join(tmpDir, "view.uiml")
	if err := os.WriteFile(stored, []byte("<div></div>"), 0644); err != nil {
		t.Fatal(err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.Store("markup", stored)
	r.StoreData("resolver.txt", []byte("h-4 -> height 1rem"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	arc, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("report is not a readable archive: %v", err)
	}
	defer arc.Close()

	found := make(map[string]string)
	for _, f := range arc.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		found[f.Name] = string(data)
	}

	if _, ok := found["MANIFEST"]; !ok {
		t.Error("report has no MANIFEST")
	}
	if got := found["markup"]; got != "<div></div>" {
		t.Errorf("stored file content = %q", got)
	}
	if got := found["resolver.txt"]; !strings.Contains(got, "height") {
		t.Errorf("stored data content = %q", got)
	}
}

func TestReportNilIsSafe(t *testing.T) {
	var r *Report

	r.Store("anything", "anywhere")
	r.StoreData("data", []byte("x"))
	if err := r.StoreCopy("copy", "nowhere"); err != nil {
		t.Errorf("StoreCopy on nil report error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report error = %v", err)
	}
}

func TestReportStoreCopy(t *testing.T) {
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "view.uiml")
	if err := os.WriteFile(src, []byte("<div>v1</div>"), 0644); err != nil {
		t.Fatal(err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}

	if err := r.StoreCopy("markup", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// change the original after the copy was taken
	if err := os.WriteFile(src, []byte("<div>v2</div>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	arc, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatal(err)
	}
	defer arc.Close()

	for _, f := range arc.File {
		if f.Name != "markup" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "<div>v1</div>" {
			t.Errorf("copy must reflect state at StoreCopy time, got %q", data)
		}
		return
	}
	t.Error("copied file is missing from the archive")
}
