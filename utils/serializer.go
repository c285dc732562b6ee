package utils

import (
	"encoding/json"
	"io"
)

type Decoder interface {
	Decode(val interface{}) error // read
}

type Encoder interface {
	Encode(val interface{}) error // write
}

type Serializer interface {
	GetEncoder(writer io.Writer) Encoder                    // write to writer
	GetDecoder(reader io.Reader, inputLimit uint64) Decoder // read from reader
}

// JSONSerializer encodes values as self-describing JSON records. Decoders are
// capped at inputLimit bytes so a malformed stream cannot grow unbounded.
type JSONSerializer struct{}

func (JSONSerializer) GetEncoder(writer io.Writer) Encoder {
	return json.NewEncoder(writer)
}

func (JSONSerializer) GetDecoder(reader io.Reader, inputLimit uint64) Decoder {
	return json.NewDecoder(io.LimitReader(reader, int64(inputLimit)))
}
