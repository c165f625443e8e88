// Package docs registers the OpenAPI document served at /swagger/doc.json
// when the server is built with -tags=swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "sonard maintainers"},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog": {"get": {"tags": ["catalog"], "summary": "Full event catalog", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CatalogResponse"}}}}},
        "/catalog/reload": {"post": {"tags": ["catalog"], "summary": "Reload the catalog from its supplier", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}},
                "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/view": {"get": {"tags": ["view"], "summary": "Current view", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/stream": {"get": {"tags": ["view"], "summary": "Server-Sent Events stream of views", "produces": ["text/event-stream"],
            "parameters": [{"type": "string", "description": "0 to skip carousel frames", "name": "frames", "in": "query"}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/search": {"post": {"tags": ["filter"], "summary": "Typed search", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.SearchRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/voice": {"post": {"tags": ["voice"], "summary": "Voice command or transcript", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "transcript or tagged command", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.VoiceRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}},
                "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/voice/audio": {"post": {"tags": ["voice"], "summary": "Transcribe recorded speech and search with it", "consumes": ["application/octet-stream"], "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}},
                "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/tags": {
            "put": {"tags": ["filter"], "summary": "Replace active tags", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "tags", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.TagsRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}},
            "delete": {"tags": ["filter"], "summary": "Clear active tags", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/tags/{tag}": {"post": {"tags": ["filter"], "summary": "Toggle one tag", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "tag", "name": "tag", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/select/{id}": {"post": {"tags": ["selection"], "summary": "Select or deselect an event", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "event id", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}},
                "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/select": {"delete": {"tags": ["selection"], "summary": "Clear the selection", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/carousel/measure": {"post": {"tags": ["carousel"], "summary": "Report carousel geometry", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "geometry", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.MeasureRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/carousel/pause": {"post": {"tags": ["carousel"], "summary": "Pause the carousel for an interaction", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/carousel/resume": {"post": {"tags": ["carousel"], "summary": "End an interaction", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "offset", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/types.ResumeRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.View"}}}}},
        "/status": {"get": {"tags": ["ops"], "summary": "Service status", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}}}
    },
    "definitions": {
        "types.Event": {"type": "object", "properties": {
            "id": {"type": "string", "example": "3"},
            "name": {"type": "string", "example": "Rooftop Silent Disco"},
            "description": {"type": "string"},
            "tags": {"type": "array", "items": {"type": "string"}, "example": ["energetic"]},
            "date": {"type": "string", "example": "2025-03-14"},
            "startTime": {"type": "string"},
            "endTime": {"type": "string"},
            "location": {"type": "string", "example": "Hall B"},
            "image": {"type": "string"},
            "energy": {"type": "number"},
            "informativeness": {"type": "number"}}},
        "types.Selection": {"type": "object", "properties": {
            "selected": {"type": "boolean"},
            "event_id": {"type": "string", "example": "3"}}},
        "types.View": {"type": "object", "properties": {
            "displayed": {"type": "array", "items": {"$ref": "#/definitions/types.Event"}},
            "related": {"type": "array", "items": {"$ref": "#/definitions/types.Event"}},
            "selection": {"$ref": "#/definitions/types.Selection"},
            "carousel_offset": {"type": "number", "example": 42.5},
            "carousel_running": {"type": "boolean"},
            "active_tags": {"type": "array", "items": {"type": "string"}},
            "query": {"type": "string"},
            "filtered": {"type": "boolean"},
            "catalog_size": {"type": "integer"},
            "version": {"type": "integer"}}},
        "types.CatalogResponse": {"type": "object", "properties": {
            "events": {"type": "array", "items": {"$ref": "#/definitions/types.Event"}},
            "tags": {"type": "array", "items": {"type": "string"}}}},
        "types.SearchRequest": {"type": "object", "properties": {"query": {"type": "string", "example": "music"}}},
        "types.TagsRequest": {"type": "object", "properties": {"tags": {"type": "array", "items": {"type": "string"}, "example": ["energetic"]}}},
        "types.VoiceRequest": {"type": "object", "properties": {
            "transcript": {"type": "string", "example": "music panel"},
            "intent": {"type": "string", "enum": ["search", "filter", "navigate"], "example": "search"},
            "query": {"type": "string"},
            "tags": {"type": "array", "items": {"type": "string"}},
            "target": {"type": "string"}}},
        "types.MeasureRequest": {"type": "object", "properties": {
            "content_width": {"type": "number", "example": 2400},
            "viewport_width": {"type": "number", "example": 800}}},
        "types.ResumeRequest": {"type": "object", "properties": {"offset": {"type": "number"}}},
        "types.ErrorResponse": {"type": "object", "properties": {
            "error": {"type": "string", "example": "invalid JSON body"},
            "code": {"type": "integer", "example": 400}}},
        "types.StatusResponse": {"type": "object", "properties": {
            "state": {"type": "string", "example": "ready"},
            "catalog_size": {"type": "integer", "example": 6},
            "catalog_source": {"type": "string", "example": "file"},
            "loaded_at_unix": {"type": "integer"},
            "selection": {"$ref": "#/definitions/types.Selection"},
            "carousel_running": {"type": "boolean"},
            "carousel_paused": {"type": "boolean"},
            "subscribers": {"type": "integer"},
            "transitions_total": {"type": "integer"},
            "loads_total": {"type": "integer"},
            "last_error": {"type": "string"},
            "uptime_seconds": {"type": "integer"},
            "server_time_unix": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "sonard API",
	Description:      "HTTP API for the Event Sonar discovery engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
