package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

var osUserHomeDir = os.UserHomeDir

// ReadYAMLFile decodes a YAML document into o.
// A missing file is not an error unless required is true.
func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	yamlDecoderFactory := func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, yamlDecoderFactory)
}

func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		if err == io.EOF {
			// empty document
			return nil
		}
		return err
	}
	return nil
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
