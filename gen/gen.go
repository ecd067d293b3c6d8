// Package gen holds the API server generated from api/openapi.yaml.
package gen

//go:generate go run github.com/ogen-go/ogen/cmd/ogen -v --clean --config ../api/ogen.yml --target oas --package oas ../api/openapi.yaml
