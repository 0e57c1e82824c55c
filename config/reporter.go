package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/maruel/natural"

	"uiml/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {

	r := &Report{items: make(map[string]item)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

// item is a single archive member waiting for finalization. Exactly one of
// path or blob carries the content.
type item struct {
	src   string
	path  string
	taken time.Time
	blob  []byte
}

// Report accumulates everything needed to assemble a debug archive.
// NOTE: presently not to be used concurrently!
type Report struct {
	items map[string]item
	file  *os.File
}

// Close assembles the archive and releases the underlying file.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		// no report was requested, nothing to do
		return nil
	}
	defer r.file.Close()

	arc := zip.NewWriter(r.file)
	defer arc.Close()

	names, manifest := r.manifest()
	if err := addFile(arc, "MANIFEST", time.Now(), bytes.NewReader(manifest)); err != nil {
		return err
	}
	// members go in in manifest order
	for _, name := range names {
		if err := r.archiveItem(arc, name); err != nil {
			return err
		}
	}
	return nil
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store records a file or directory path to be archived when the report is
// closed. The content is read at Close time, not now.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}

	if old, exists := r.items[name]; exists && old.src != path {
		// Somewhere I do not know what I am doing.
		panic(fmt.Sprintf("Attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.src, path))
	}

	it := item{src: path, path: path}
	if p, err := filepath.Abs(path); err == nil {
		it.path = p
	}
	r.items[name] = it
}

// StoreData records binary data to be archived under the requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}

	if _, exists := r.items[name]; exists {
		// Somewhere I do not know what I am doing.
		panic(fmt.Sprintf("Attempt to overwrite data in the report for [%s]", name))
	}
	r.items[name] = item{blob: data, taken: time.Now()}
}

// StoreCopy snapshots the file or directory into a temporary location right
// now, so later changes to the original do not leak into the report. Repeated
// names are versioned with timestamps, storing the same content more than once
// is safe.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	it := item{src: path, taken: time.Now()}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	it.path = abs

	if _, exists := r.items[name]; exists {
		name = fmt.Sprintf("%s-%d", name, it.taken.UnixNano())
	}

	dir, err := os.MkdirTemp("", misc.GetAppName()+"-r-")
	if err != nil {
		return err
	}

	info, err := os.Stat(it.path)
	if err != nil {
		return err
	}
	switch {
	case info.Mode().IsRegular():
		where, err := snapshotFile(dir, it.path, info.ModTime())
		if err != nil {
			return err
		}
		it.path = where
	case info.Mode().IsDir():
		if err := snapshotTree(dir, it.path); err != nil {
			return err
		}
		it.path = dir
	}

	r.items[name] = it
	return nil
}

// manifest renders the member listing and returns names in listing order.
func (r *Report) manifest() ([]string, []byte) {

	buf := new(bytes.Buffer)
	if len(r.items) == 0 {
		return nil, buf.Bytes()
	}

	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	sort.Sort(natural.StringSlice(names))

	now := time.Now()
	for _, k := range names {
		it := r.items[k]
		if it.taken.IsZero() {
			it.taken = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s -> %s\n", it.taken.UTC().Format(time.UnixDate), k, it.src, it.path)
	}
	return names, buf.Bytes()
}

// archiveItem writes a single recorded member into the archive. Paths that
// disappeared since they were recorded are skipped silently.
func (r *Report) archiveItem(arc *zip.Writer, name string) error {

	it := r.items[name]
	if len(it.blob) > 0 {
		return addFile(arc, name, it.taken, bytes.NewReader(it.blob))
	}

	info, err := os.Stat(it.path)
	if err != nil {
		return nil
	}
	switch {
	case info.Mode().IsRegular():
		in, err := os.Open(it.path)
		if err != nil {
			return err
		}
		defer in.Close()
		return addFile(arc, name, info.ModTime(), in)
	case info.Mode().IsDir():
		return addTree(arc, name, it.path)
	}
	return nil
}

func addFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func addTree(dst *zip.Writer, name, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			// ignore links, sockets, etc.
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		return addFile(dst, filepath.ToSlash(filepath.Join(name, rel)), info.ModTime(), in)
	})
}

func snapshotFile(dir, src string, modTime time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", err
	}
	if err = out.Sync(); err != nil {
		return "", err
	}
	out.Close()

	if err := os.Chtimes(dst, modTime, modTime); err != nil {
		return "", err
	}
	return dst, nil
}

func snapshotTree(dir, src string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			// ignore links, sockets, etc.
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		_, err = snapshotFile(filepath.Dir(filepath.Join(dir, rel)), path, info.ModTime())
		return err
	})
}
