package json

import jsoniter "github.com/json-iterator/go"

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal serializes v using jsoniter with stdlib-compatible settings.
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent serializes v with indentation, for human-facing output.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal deserializes data into v.
func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}
