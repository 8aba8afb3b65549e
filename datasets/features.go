package datasets

import "bufio"
import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"

// Feature is a preprocessed training example as written by the tokenizer stage
type Feature struct {
	Label    uint16   `json:"label"`
	IsContra bool     `json:"contra"`
	Inputs   []uint32 `json:"features,omitempty"`
}

func (f *Feature) Feature(n int) uint32 {
	if len(f.Inputs) == 0 {
		return 0
	}
	return f.Inputs[n%len(f.Inputs)]
}

func (f *Feature) Output() uint16 {
	return f.Label
}

func (f *Feature) Contra() bool {
	return f.IsContra
}

// Features is a Slice backed by an in-memory feature list
type Features []Feature

func (f Features) Get(n int) Sample {
	return &f[n]
}

func (f Features) Len() int {
	return len(f)
}

// ReadJSONL reads one feature per line, blank lines are skipped
func ReadJSONL(r io.Reader) (Features, error) {
	var out Features
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var f Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading features")
	}
	return out, nil
}

// LoadJSONL reads a features file from disk
func LoadJSONL(path string) (Features, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening features")
	}
	defer file.Close()
	return ReadJSONL(file)
}

// WriteJSONL writes the features one per line
func WriteJSONL(w io.Writer, f Features) error {
	enc := json.NewEncoder(w)
	for i := range f {
		if err := enc.Encode(&f[i]); err != nil {
			return errors.Wrapf(err, "feature %d", i)
		}
	}
	return nil
}
