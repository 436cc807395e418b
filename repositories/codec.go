package repositories

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Registry strings are arbitrary bytes while structpb strings must be valid
// UTF-8, so every stored string goes through base64.
func bytesValue(s string) *structpb.Value {
	return structpb.NewStringValue(base64.StdEncoding.EncodeToString([]byte(s)))
}

func fromBytesValue(fields map[string]*structpb.Value, name string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(fields[name].GetStringValue())
	if err != nil {
		return "", fmt.Errorf("field %s: %w", name, err)
	}
	return string(data), nil
}

func bytesList(values []string) *structpb.Value {
	list := make([]*structpb.Value, 0, len(values))
	for _, value := range values {
		list = append(list, bytesValue(value))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list})
}

func fromBytesList(fields map[string]*structpb.Value, name string) ([]string, error) {
	values := fields[name].GetListValue().GetValues()
	res := make([]string, 0, len(values))
	for i, value := range values {
		data, err := base64.StdEncoding.DecodeString(value.GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("field %s[%d]: %w", name, i, err)
		}
		res = append(res, string(data))
	}
	return res, nil
}
