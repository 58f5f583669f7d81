// Package frames stores the preloaded ASCII animation frames the demo
// streams: loading from a directory of per-frame text files, and a packed
// single-file format so thousands of tiny files can ship as one artifact.
package frames

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// DefaultFPS is the playback rate when a source does not carry one.
const DefaultFPS = 60.0

// packVersion guards the pack format against incompatible readers.
const packVersion = 1

// Set is an in-memory frame sequence.
type Set struct {
	FPS    float64
	Frames []string
}

// Len returns the number of frames.
func (s *Set) Len() int {
	return len(s.Frames)
}

// Frame returns frame i.
func (s *Set) Frame(i int) string {
	return s.Frames[i]
}

// LoadDir reads every frame file in dir in lexical order. Frame files are
// named out*.jpg.txt (the ffmpeg-then-ascii pipeline's naming); when none
// match, any *.txt file counts.
func LoadDir(dir string) (*Set, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "out*.jpg.txt"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		if paths, err = filepath.Glob(filepath.Join(dir, "*.txt")); err != nil {
			return nil, err
		}
	}
	sort.Strings(paths)

	set := &Set{FPS: DefaultFPS, Frames: make([]string, 0, len(paths))}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("frames: reading %s: %w", path, err)
		}
		set.Frames = append(set.Frames, string(data))
	}
	return set, nil
}

// pack is the on-disk shape of a frame pack.
type pack struct {
	Version int      `msgpack:"version"`
	FPS     float64  `msgpack:"fps"`
	Frames  []string `msgpack:"frames"`
}

// WritePack encodes the set into the packed format.
func (s *Set) WritePack(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(pack{
		Version: packVersion,
		FPS:     s.FPS,
		Frames:  s.Frames,
	})
}

// LoadPack decodes a packed frame set.
func LoadPack(r io.Reader) (*Set, error) {
	var p pack
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("frames: decoding pack: %w", err)
	}
	if p.Version != packVersion {
		return nil, fmt.Errorf("frames: unsupported pack version %d", p.Version)
	}
	set := &Set{FPS: p.FPS, Frames: p.Frames}
	if set.FPS <= 0 {
		set.FPS = DefaultFPS
	}
	return set, nil
}

// Load reads frames from path: a directory of frame files, or a pack file.
func Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPack(f)
}
