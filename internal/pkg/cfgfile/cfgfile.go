package cfgfile

import (
	"github.com/ansel1/merry"
	"io/ioutil"
	"os"
	"path/filepath"
)

type MarshalFunc = func(in interface{}) (out []byte, err error)
type UnmarshalFunc = func(in []byte, out interface{}) error

type F struct {
	filename  string
	marshal   MarshalFunc
	unmarshal UnmarshalFunc
}

// New binds filename to a codec. A relative filename is resolved against the
// directory of the executable.
func New(filename string, marshal MarshalFunc, unmarshal UnmarshalFunc) *F {
	if !filepath.IsAbs(filename) {
		filename = ExeDir(filename)
	}
	return &F{
		filename:  filename,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (x *F) Set(in interface{}) error {
	data, err := x.marshal(in)
	if err != nil {
		return x.err(err)
	}
	if err := ioutil.WriteFile(x.filename, data, 0666); err != nil {
		return x.err(err)
	}
	return nil
}

// Get returns the unmodified os error when the file can not be read so that
// callers can check os.IsNotExist.
func (x *F) Get(out interface{}) error {
	data, err := ioutil.ReadFile(x.filename)
	if err != nil {
		return err
	}
	if err := x.unmarshal(data, out); err != nil {
		return x.err(err)
	}
	return nil
}

func (x *F) err(err error) error {
	return merry.Append(err, x.filename)
}

func (x *F) Filename() string {
	return x.filename
}

func ExeDir(name string) string {
	return filepath.Join(filepath.Dir(os.Args[0]), name)
}
