package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/lendbook/lendbook-backend/docs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/swaggo/swag"
)

const (
	swaggerDefinitionsRef = "#/definitions/"
	openAPISchemasRef     = "#/components/schemas/"
)

type jsonObject = map[string]any

// OpenAPIDocument is the OpenAPI 3.0 rendering of the generated swagger doc
type OpenAPIDocument struct {
	OpenAPI    string       `json:"openapi"`
	Info       jsonObject   `json:"info"`
	Servers    []jsonObject `json:"servers"`
	Paths      jsonObject   `json:"paths"`
	Components jsonObject   `json:"components"`
}

// ServeOpenAPI3Spec serves the generated API docs as OpenAPI 3.0 JSON
func ServeOpenAPI3Spec(c echo.Context) error {
	doc, err := buildOpenAPIDocument()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build OpenAPI document")
		return NewInternalError(c, "Failed to build OpenAPI document")
	}
	return c.JSON(http.StatusOK, doc)
}

func buildOpenAPIDocument() (*OpenAPIDocument, error) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}
	var swagger jsonObject
	if err := json.Unmarshal([]byte(raw), &swagger); err != nil {
		return nil, err
	}

	paths := jsonObject{}
	if src, ok := swagger["paths"].(jsonObject); ok {
		for path, item := range src {
			ops, ok := item.(jsonObject)
			if !ok {
				continue
			}
			converted := jsonObject{}
			for method, op := range ops {
				if op, ok := op.(jsonObject); ok {
					converted[method] = convertOperation(op)
				}
			}
			paths[path] = converted
		}
	}

	schemas, _ := rewriteRefs(swagger["definitions"]).(jsonObject)
	if schemas == nil {
		schemas = jsonObject{}
	}

	// Session tokens travel as "Authorization: Bearer <token>"
	components := jsonObject{
		"schemas": schemas,
		"securitySchemes": jsonObject{
			"BearerAuth": jsonObject{"type": "http", "scheme": "bearer"},
		},
	}

	info, _ := swagger["info"].(jsonObject)
	return &OpenAPIDocument{
		OpenAPI:    "3.0.3",
		Info:       info,
		Servers:    []jsonObject{{"url": docs.SwaggerInfo.BasePath}},
		Paths:      paths,
		Components: components,
	}, nil
}

// convertOperation moves body parameters into requestBody and wraps
// parameter and response schemas the OpenAPI 3 way
func convertOperation(op jsonObject) jsonObject {
	out := jsonObject{}
	for key, value := range op {
		switch key {
		case "parameters", "responses", "consumes", "produces":
		default:
			out[key] = rewriteRefs(value)
		}
	}

	var params []any
	list, _ := op["parameters"].([]any)
	for _, p := range list {
		param, ok := p.(jsonObject)
		if !ok {
			continue
		}
		if param["in"] == "body" {
			out["requestBody"] = jsonObject{
				"required": param["required"] == true,
				"content":  jsonContent(param["schema"]),
			}
			continue
		}
		converted := jsonObject{"schema": jsonObject{}}
		for field, value := range param {
			switch field {
			case "name", "in", "description", "required":
				converted[field] = value
			default:
				converted["schema"].(jsonObject)[field] = rewriteRefs(value)
			}
		}
		params = append(params, converted)
	}
	if len(params) > 0 {
		out["parameters"] = params
	}

	responses := jsonObject{}
	if src, ok := op["responses"].(jsonObject); ok {
		for status, r := range src {
			resp, ok := r.(jsonObject)
			if !ok {
				continue
			}
			converted := jsonObject{"description": resp["description"]}
			if schema, ok := resp["schema"]; ok {
				converted["content"] = jsonContent(schema)
			}
			responses[status] = converted
		}
	}
	out["responses"] = responses
	return out
}

func jsonContent(schema any) jsonObject {
	return jsonObject{"application/json": jsonObject{"schema": rewriteRefs(schema)}}
}

// rewriteRefs points every definitions $ref at components/schemas
func rewriteRefs(v any) any {
	switch v := v.(type) {
	case jsonObject:
		out := make(jsonObject, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				out[key] = strings.Replace(ref, swaggerDefinitionsRef, openAPISchemasRef, 1)
				continue
			}
			out[key] = rewriteRefs(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = rewriteRefs(item)
		}
		return out
	default:
		return v
	}
}
