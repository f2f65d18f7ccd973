// SPDX-License-Identifier: MIT

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes mono 16-bit PCM as a canonical 44-byte-header WAV.
// Unlike encoder-style APIs it needs no seeking, so it works with any
// io.Writer.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	numChannels := uint16(1)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := uint16(numChannels) * uint16(bitsPerSample/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
