package speech

import (
	"bytes"
	"context"
	"encoding/binary"
)

// Transcriber turns recorded audio into text. Failures are always *Error.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type audioFormat struct {
	Encoding        string
	SampleRateHertz int64
}

// detectFormat reads the container header; unknown formats yield a zero
// value and the recognizer decides.
func detectFormat(audio []byte) audioFormat {
	switch {
	case len(audio) >= 28 && bytes.Equal(audio[0:4], []byte("RIFF")) && bytes.Equal(audio[8:12], []byte("WAVE")):
		return audioFormat{
			Encoding:        "LINEAR16",
			SampleRateHertz: int64(binary.LittleEndian.Uint32(audio[24:28])),
		}
	case len(audio) >= 4 && bytes.Equal(audio[0:4], []byte("fLaC")):
		return audioFormat{Encoding: "FLAC"}
	case len(audio) >= 4 && bytes.Equal(audio[0:4], []byte("OggS")):
		return audioFormat{Encoding: "OGG_OPUS", SampleRateHertz: 48000}
	}
	return audioFormat{}
}
