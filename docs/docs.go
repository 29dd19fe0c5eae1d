// Package docs registers the OpenAPI document served under /swagger. Keep it
// in step with the handler annotations in internal/handlers.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register an operator",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Obtain an access token",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/start": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Door and filter problems are reported in the outcome status, not as HTTP errors.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dishwasher"],
                "summary": "Start a wash cycle",
                "parameters": [
                    {"description": "Cycle request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StartCycleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CycleOutcome"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/programs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dishwasher"],
                "summary": "List washing programs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.ProgramInfo"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dishwasher"],
                "summary": "Get appliance state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApplianceState"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/door/open": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appliance"],
                "summary": "Open the door",
                "responses": {
                    "200": {"description": "status, state", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/door/close": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appliance"],
                "summary": "Close the door",
                "responses": {
                    "200": {"description": "status, state", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/filter/clean": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appliance"],
                "summary": "Clean the dirt filter",
                "responses": {
                    "200": {"description": "status, state", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/dishwasher/filter": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appliance"],
                "summary": "Set the dirt filter reading",
                "parameters": [
                    {"description": "Capacity payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FilterCapacityRequest"}}
                ],
                "responses": {
                    "200": {"description": "status, state", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/dishwasher/faults": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appliance"],
                "summary": "Inject a hardware fault",
                "parameters": [
                    {"description": "Fault payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FaultRequest"}}
                ],
                "responses": {
                    "200": {"description": "status, state", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appliance"],
                "summary": "Clear hardware faults",
                "responses": {
                    "200": {"description": "status, state", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). A date-only 'to' is inclusive to the end of that day.",
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List maintenance events",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "description": "End of range. Date-only treated as end of day.", "name": "to", "in": "query"},
                    {"enum": ["DOOR_OPENED", "DOOR_CLOSED", "FILTER_CLEANED", "FILTER_SET", "FAULT_INJECTED", "FAULTS_CLEARED"], "type": "string", "description": "Event type", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.StartCycleRequest": {
            "type": "object",
            "required": ["program"],
            "properties": {
                "fill_level": {"description": "Water fill level. Allowed: HALF, FULL. Empty uses the appliance default", "type": "string", "example": "FULL"},
                "program": {"description": "Washing program. Allowed: ECO, INTENSIVE, RINSE, NIAGARA", "type": "string", "example": "ECO"},
                "tablets_used": {"description": "Whether a detergent tablet was loaded", "type": "boolean", "example": true}
            }
        },
        "handlers.FilterCapacityRequest": {
            "type": "object",
            "required": ["capacity"],
            "properties": {
                "capacity": {"description": "Remaining usable capacity in percent, 0..100", "type": "number", "example": 33}
            }
        },
        "handlers.FaultRequest": {
            "type": "object",
            "required": ["component", "reason"],
            "properties": {
                "component": {"description": "Component to break. Allowed: PUMP, ENGINE", "type": "string", "example": "PUMP"},
                "reason": {"description": "Human-readable fault description", "type": "string", "example": "inlet valve stuck"}
            }
        },
        "service.CycleOutcome": {
            "type": "object",
            "properties": {
                "fault": {"type": "string"},
                "fill_level": {"type": "string"},
                "program": {"type": "string"},
                "run_minutes": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "service.ProgramInfo": {
            "type": "object",
            "properties": {
                "minutes": {"type": "integer"},
                "program": {"type": "string"}
            }
        },
        "models.ApplianceState": {
            "type": "object",
            "properties": {
                "door_closed": {"type": "boolean"},
                "engine_fault": {"type": "string"},
                "filter_capacity": {"type": "number"},
                "id": {"type": "integer"},
                "pump_fault": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dishwasher Controller API",
	Description:      "Runs wash cycles against a simulated dishwasher and exposes its maintenance log.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
