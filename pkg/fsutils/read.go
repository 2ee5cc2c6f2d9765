package fsutils

import (
	"io"
	"os"
)

var osOpen = os.Open

// ReadFileData reads at most max bytes from the start of a file.
// max <= 0 reads the whole file.
func ReadFileData(name string, max int) (data []byte, err error) {
	f, err := osOpen(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	if max <= 0 {
		return io.ReadAll(f)
	}
	data = make([]byte, max)
	n, err := io.ReadFull(f, data)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	return data[:n], err
}
