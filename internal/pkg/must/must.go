// Package must panics on errors that can only come from programming mistakes.
package must

import "gopkg.in/yaml.v3"

// PanicIf will call panic(err) in case given err is not nil.
func PanicIf(err error) {
	if err != nil {
		panic(err)
	}
}

// MarshalYaml is a wrapper for yaml.Marshal.
func MarshalYaml(v interface{}) []byte {
	data, err := yaml.Marshal(v)
	PanicIf(err)
	return data
}
