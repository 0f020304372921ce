// Package docs holds the generated OpenAPI document. Regenerate with:
//
//	swag init -g cmd/pagos/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/pagos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pagos"],
                "summary": "List payments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pagos"],
                "summary": "Create a payment record",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            }
        },
        "/pagos/procesar": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pagos"],
                "summary": "Process a payment",
                "parameters": [
                    {
                        "description": "Payment details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ProcessPaymentRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Payment created", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            }
        },
        "/pagos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pagos"],
                "summary": "Get a payment",
                "parameters": [
                    {"type": "string", "description": "Payment id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pagos"],
                "summary": "Update a payment record",
                "parameters": [
                    {"type": "string", "description": "Payment id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["pagos"],
                "summary": "Delete a payment",
                "parameters": [
                    {"type": "string", "description": "Payment id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/pagos/{id}/estado": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pagos"],
                "summary": "Update payment status",
                "parameters": [
                    {"type": "string", "description": "Payment id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.UpdateStatusRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            }
        },
        "/reembolsos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reembolsos"],
                "summary": "List refunds",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            }
        },
        "/reembolsos/procesar": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reembolsos"],
                "summary": "Request a refund",
                "parameters": [
                    {
                        "description": "Refund details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ProcessRefundRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Refund created", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "400": {"description": "Invalid request or non-positive amount", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            }
        },
        "/reembolsos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reembolsos"],
                "summary": "Get a refund",
                "parameters": [
                    {"type": "string", "description": "Refund id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["reembolsos"],
                "summary": "Delete a refund",
                "parameters": [
                    {"type": "string", "description": "Refund id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/transacciones/{id}/estado": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transacciones"],
                "summary": "Query transaction status at the gateway",
                "parameters": [
                    {"type": "string", "description": "Transaction id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ProcessPaymentRequest": {
            "type": "object",
            "required": ["orderId", "usuarioId"],
            "properties": {
                "monto": {"type": "number"},
                "orderId": {"type": "string"},
                "usuarioId": {"type": "string"}
            }
        },
        "handlers.ProcessRefundRequest": {
            "type": "object",
            "required": ["pagoId"],
            "properties": {
                "monto": {"type": "number"},
                "pagoId": {"type": "string"}
            }
        },
        "handlers.UpdateStatusRequest": {
            "type": "object",
            "required": ["estado"],
            "properties": {
                "estado": {"type": "string"}
            }
        },
        "rest.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/rest.APIError"},
                "success": {"type": "boolean"}
            }
        },
        "rest.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "2.0",
	Host:             "",
	BasePath:         "/api/v2",
	Schemes:          []string{},
	Title:            "Pagos Service API",
	Description:      "Payment, transaction and refund lifecycle service backed by a stubbed Webpay gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
