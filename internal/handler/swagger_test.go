package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSwagger2Doc = `{
	"swagger": "2.0",
	"info": {"title": "Karja API", "version": "1.0"},
	"securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
	"paths": {
		"/debts/{id}": {
			"get": {
				"parameters": [{"type": "string", "description": "Debt ID", "name": "id", "in": "path", "required": true}],
				"responses": {"200": {"schema": {"$ref": "#/definitions/handler.DebtResponse"}}}
			}
		}
	},
	"definitions": {
		"handler.DebtResponse": {"type": "object", "properties": {"id": {"type": "string"}}}
	}
}`

func TestConvertToOpenAPI3(t *testing.T) {
	servers := []Server{{URL: "http://localhost:8080/api/v1", Description: "Local"}}

	spec, err := ConvertToOpenAPI3([]byte(testSwagger2Doc), servers)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Equal(t, "Karja API", spec.Info["title"])
	assert.Equal(t, servers, spec.Servers)
	assert.Contains(t, spec.Components, "securitySchemes")
	assert.Contains(t, spec.Components, "schemas")

	get := spec.Paths["/debts/{id}"].(map[string]interface{})["get"].(map[string]interface{})

	param := get["parameters"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "id", param["name"])
	assert.Equal(t, map[string]interface{}{"type": "string"}, param["schema"])
	assert.NotContains(t, param, "type")

	schema := get["responses"].(map[string]interface{})["200"].(map[string]interface{})["schema"].(map[string]interface{})
	assert.Equal(t, "#/components/schemas/handler.DebtResponse", schema["$ref"])
}

func TestConvertToOpenAPI3_InvalidDocument(t *testing.T) {
	_, err := ConvertToOpenAPI3([]byte("not json"), nil)
	assert.Error(t, err)
}

func TestTransformParameter_BodyKeptAsIs(t *testing.T) {
	param := map[string]interface{}{"name": "request", "in": "body", "schema": map[string]interface{}{"$ref": "#/definitions/x"}}

	result := transformParameter(param)

	assert.Equal(t, param, result)
}
