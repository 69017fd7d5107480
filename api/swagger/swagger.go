package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "AI Campus Concierge API",
        "description": "Natural-language and REST access to campus events, exams and placement drives",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Chat", "description": "Natural-language questions"},
        {"name": "Campus", "description": "Read-only campus lookups"},
        {"name": "Authentication", "description": "Administrator login"},
        {"name": "Admin", "description": "Campus data management"},
        {"name": "System", "description": "Probes"}
    ],
    "paths": {
        "/health": {
            "get": {"tags": ["System"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "Ready"}, "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Ask the campus concierge",
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}],
                "responses": {
                    "200": {"description": "Answer", "schema": {"$ref": "#/definitions/ChatResponse"}},
                    "400": {"description": "Blank message", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Resolver unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/chat/health": {
            "get": {"tags": ["Chat"], "summary": "Chat health", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/chat/tools": {
            "get": {"tags": ["Chat"], "summary": "List resolver tools", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/events": {
            "get": {
                "tags": ["Campus"],
                "summary": "List events",
                "parameters": [
                    {"in": "query", "name": "date", "type": "string", "description": "Exact date (YYYY-MM-DD)"},
                    {"in": "query", "name": "category", "type": "string", "enum": ["cultural", "technical"]},
                    {"in": "query", "name": "days_ahead", "type": "integer", "default": 7}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/events/today": {
            "get": {"tags": ["Campus"], "summary": "List today's events", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/exams": {
            "get": {
                "tags": ["Campus"],
                "summary": "List exams",
                "parameters": [
                    {"in": "query", "name": "department", "type": "string", "enum": ["CSE", "ECE", "ME", "CE", "IT", "EEE"]},
                    {"in": "query", "name": "semester", "type": "integer", "minimum": 1, "maximum": 8},
                    {"in": "query", "name": "subject", "type": "string"},
                    {"in": "query", "name": "days_ahead", "type": "integer", "default": 30}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/placements": {
            "get": {
                "tags": ["Campus"],
                "summary": "List placement drives",
                "parameters": [
                    {"in": "query", "name": "department", "type": "string"},
                    {"in": "query", "name": "company", "type": "string"},
                    {"in": "query", "name": "days_ahead", "type": "integer", "default": 30}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate administrator",
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/{table}": {
            "get": {
                "tags": ["Admin"],
                "summary": "List every row of a campus table",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "table", "required": true, "type": "string", "enum": ["events", "exams", "placements"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Admin"],
                "summary": "Create a row",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "table", "required": true, "type": "string", "enum": ["events", "exams", "placements"]},
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/{table}/{id}": {
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete a row",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "table", "required": true, "type": "string", "enum": ["events", "exams", "placements"]},
                    {"in": "path", "name": "id", "required": true, "type": "integer"}
                ],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/admin/{table}/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export a campus table",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"in": "path", "name": "table", "required": true, "type": "string", "enum": ["events", "exams", "placements"]},
                    {"in": "query", "name": "format", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {"200": {"description": "File"}}
            }
        },
        "/api/v1/admin/metrics": {
            "get": {"tags": ["Admin"], "summary": "Runtime metrics snapshot", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {"message": {"type": "string"}}
        },
        "ChatResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"type": "array", "x-nullable": true, "items": {"type": "object"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
