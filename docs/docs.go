// Package docs registers the Swagger template served at /swagger. The
// template is maintained by hand; rerun swag init to regenerate it from the
// handler annotations.
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/sessions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Revoke a session",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/register/personal-info": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Start registration with personal info",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/register/verify-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Verify the user email",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/register/company-info": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Submit company info (admin path)",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/register/verify-company": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Verify the company contact email",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/register/complete": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Finalize registration",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/register/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Registration"],
                "summary": "Resume a pending registration",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/ws": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Subscribe to company notifications over WebSocket",
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/notify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Notifications"],
                "summary": "Republish a notification to the company channels",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/notif": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Notifications"],
                "summary": "Pending fingerprint notifications",
                "responses": {
                    "200": {"description": "OK"}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/employes/validate-fingerprint": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Employes"],
                "summary": "Validate an employee fingerprint",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found"}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/presences/report/pdf": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Presences"],
                "summary": "Export an attendance report as PDF",
                "responses": {
                    "200": {"description": "OK"}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/conges": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Conges"],
                "summary": "Request a leave",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found"}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/conges/{id}/approve": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Conges"],
                "summary": "Approve a leave request",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                },
                "security": [{"BearerAuth": []}]
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
	Title:            "FingerTrack API",
	Description:      "Multi-tenant attendance and registration backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
