package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/touchin/ticodegen/internal/model"
)

const petstore = `openapi: 3.1.0
info:
  title: Petstore
  version: 1.0.0
paths: {}
components:
  securitySchemes:
    api_key:
      type: apiKey
      in: header
      name: X-API-KEY
    bearer:
      type: http
      scheme: bearer
  schemas:
    Timestamp:
      type: string
      format: date-time
    Status:
      type: string
      enum: [placed, approved]
    Order:
      type: object
      required: [id]
      properties:
        id:
          type: string
        count:
          type: integer
          default: 3
        createdAt:
          type: string
          format: date-time
        legacyDate:
          type: string
          x-custom-date-format: dd.MM.yyyy
        nullFormat:
          type: string
          x-custom-date-format: null
        status:
          $ref: '#/components/schemas/Status'
        tags:
          type: array
          items:
            type: string
        extra:
          type: object
          additionalProperties:
            type: integer
        note:
          type: [string, "null"]
        code:
          type: string
          deprecated: true
`

func TestLoad(t *testing.T) {
	result, err := Load([]byte(petstore))
	require.NoError(t, err)
	require.Equal(t, "3.1.0", result.Version)
	require.Empty(t, result.Warnings)
}

func TestLoadRejectsSwagger2(t *testing.T) {
	_, err := Load([]byte("swagger: '2.0'\ninfo:\n  title: x\n  version: '1'\npaths: {}\n"))
	require.Error(t, err)
}

func TestLoadWarnsOn30(t *testing.T) {
	result, err := Load([]byte("openapi: 3.0.3\ninfo:\n  title: x\n  version: '1'\npaths: {}\n"))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstore), 0644))

	result, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, result.Document)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestTransform(t *testing.T) {
	result, err := Load([]byte(petstore))
	require.NoError(t, err)

	spec, err := Transform(result)
	require.NoError(t, err)

	require.Equal(t, "Petstore", spec.Info.Title)
	require.Len(t, spec.Schemas, 3)
	require.Equal(t, "Timestamp", spec.Schemas[0].Name)
	require.True(t, spec.Schemas[0].IsDateTime())
	require.Equal(t, []any{"placed", "approved"}, spec.Schemas[1].Enum)

	order := spec.SchemaByName("Order")
	require.NotNil(t, order)
	require.True(t, order.IsRequired("id"))
	require.False(t, order.IsRequired("count"))

	props := make(map[string]*model.Schema)
	for _, p := range order.Properties {
		props[p.Name] = p.Schema
	}

	require.Equal(t, 3, props["count"].Default)
	require.True(t, props["createdAt"].IsDateTime())
	require.Equal(t, "#/components/schemas/Status", props["status"].Ref)
	require.Equal(t, model.TypeString, props["tags"].Items.Type)
	require.Equal(t, model.TypeInteger, props["extra"].AdditionalProperties.Type)

	require.Equal(t, map[string]any{"x-custom-date-format": "dd.MM.yyyy"}, props["legacyDate"].Extensions)

	value, ok := props["nullFormat"].Extensions["x-custom-date-format"]
	require.True(t, ok)
	require.Nil(t, value)

	require.Nil(t, props["id"].Extensions)

	require.Equal(t, model.TypeString, props["note"].Type)
	require.True(t, props["note"].Nullable)
	require.False(t, props["id"].Nullable)
	require.True(t, props["code"].Deprecated)
}

func TestTransformSecuritySchemes(t *testing.T) {
	result, err := Load([]byte(petstore))
	require.NoError(t, err)

	spec, err := Transform(result)
	require.NoError(t, err)

	require.Equal(t, []model.SecurityScheme{
		{Name: "api_key", Type: model.SecurityTypeAPIKey, In: "header", KeyName: "X-API-KEY"},
		{Name: "bearer", Type: model.SecurityTypeHTTP, Scheme: "bearer"},
	}, spec.Security)
}

func TestValidate(t *testing.T) {
	result, err := Load([]byte(petstore))
	require.NoError(t, err)
	require.NoError(t, result.Validate())
}
