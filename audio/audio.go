// SPDX-License-Identifier: MIT

package audio

import (
	"io"
	"sync"
)

// Source is a stream of interleaved float32 PCM samples in [-1, 1].
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the
	// number of float32 values written (not frames). A short read with
	// err == io.EOF delivers the tail of the stream.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the source's preferred read size in samples.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an encoded input stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (usually file extensions, e.g. "wav",
// "mp3", "ogg") to decoders. It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
