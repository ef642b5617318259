// Package docs registers the API description served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/purchases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "List all purchases, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Purchase"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/purchases/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "Get a purchase",
                "parameters": [{"type": "string", "description": "32 hex character purchase id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Purchase"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/InvalidResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/SuccessResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "Partially update a purchase",
                "parameters": [
                    {"type": "string", "description": "32 hex character purchase id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "purchase", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PurchaseInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/InvalidResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "Delete a purchase",
                "parameters": [{"type": "string", "description": "32 hex character purchase id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/InvalidResponse"}}
                }
            }
        },
        "/api/markets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "List markets that have purchases",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/api/markets/{market}/purchases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "List purchases for a market, newest first",
                "parameters": [{"type": "string", "description": "Market symbol, e.g. BTC-USD", "name": "market", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Purchase"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "Record a purchase",
                "parameters": [
                    {"type": "string", "description": "Market symbol, e.g. BTC-USD", "name": "market", "in": "path", "required": true},
                    {"description": "All purchase fields", "name": "purchase", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PurchaseInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Purchase"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/InvalidResponse"}}
                }
            }
        },
        "/api/exchange/markets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "List exchange market symbols",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/api/exchange/markets/{market}/ticker": {
            "get": {
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "Exchange ticker for a market",
                "parameters": [{"type": "string", "description": "Market symbol, e.g. BTC-USD", "name": "market", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Exchange ticker body, relayed verbatim"}
                }
            }
        },
        "/bitcoin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "BTC-USD ticker",
                "responses": {
                    "200": {"description": "Exchange ticker body, relayed verbatim"}
                }
            }
        }
    },
    "definitions": {
        "PurchaseInput": {
            "type": "object",
            "properties": {
                "dollar_value": {"type": "number"},
                "euro_value": {"type": "number"},
                "bitcoin_price": {"type": "number"},
                "bitcoin_volume": {"type": "number"}
            }
        },
        "Purchase": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "_created_at": {"type": "integer"},
                "_updated_at": {"type": "integer"},
                "market": {"type": "string"},
                "dollar_value": {"type": "number"},
                "euro_value": {"type": "number"},
                "bitcoin_price": {"type": "number"},
                "bitcoin_volume": {"type": "number"}
            }
        },
        "InvalidResponse": {"type": "object", "properties": {"invalid": {"type": "boolean"}}},
        "SuccessResponse": {"type": "object", "properties": {"success": {"type": "boolean"}}},
        "ErrorResponse": {"type": "object", "properties": {"error": {"type": "boolean"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "coinledger API",
	Description:      "Records crypto purchases per market and relays exchange market data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
