// Package docs registers the OpenAPI document served under /swagger/.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and the JWT."
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a token",
                "responses": {
                    "200": {"description": "token and user"},
                    "401": {"description": "invalid credentials or rejected account"}
                }
            }
        },
        "/auth/forgotpassword": {
            "post": {
                "tags": ["auth"],
                "summary": "Request a password reset email",
                "responses": {"200": {"description": "always, for well-formed emails"}}
            }
        },
        "/auth/resetpassword/{token}": {
            "put": {
                "tags": ["auth"],
                "summary": "Reset the password with an emailed token",
                "parameters": [{"name": "token", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "password updated"},
                    "400": {"description": "invalid or expired token"}
                }
            }
        },
        "/users/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a volunteer account",
                "responses": {
                    "201": {"description": "token and created user"},
                    "409": {"description": "email already in use"}
                }
            }
        },
        "/users/profile": {
            "get": {
                "tags": ["users"],
                "security": [{"BearerAuth": []}],
                "summary": "Get my profile",
                "responses": {"200": {"description": "profile"}}
            },
            "put": {
                "tags": ["users"],
                "security": [{"BearerAuth": []}],
                "summary": "Update my profile",
                "responses": {"200": {"description": "updated profile"}}
            }
        },
        "/users/profile/picture": {
            "post": {
                "tags": ["users"],
                "security": [{"BearerAuth": []}],
                "summary": "Upload a profile picture",
                "responses": {"200": {"description": "updated profile"}}
            }
        },
        "/users/my-events": {
            "get": {
                "tags": ["registrations"],
                "security": [{"BearerAuth": []}],
                "summary": "List the events I'm registered for",
                "responses": {"200": {"description": "registrations with event details"}}
            }
        },
        "/users/my-hours": {
            "get": {
                "tags": ["hours"],
                "security": [{"BearerAuth": []}],
                "summary": "List my hour logs",
                "responses": {"200": {"description": "hour logs"}}
            }
        },
        "/users": {
            "get": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "List volunteer accounts",
                "responses": {"200": {"description": "paginated volunteers"}}
            }
        },
        "/users/{userID}/status": {
            "put": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Approve or reject a volunteer",
                "parameters": [{"name": "userID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "updated user"},
                    "404": {"description": "user not found"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List upcoming events",
                "responses": {"200": {"description": "upcoming events, soonest first"}}
            },
            "post": {
                "tags": ["events"],
                "security": [{"BearerAuth": []}],
                "summary": "Create an event",
                "responses": {"201": {"description": "created event"}}
            }
        },
        "/events/{eventID}": {
            "get": {
                "tags": ["events"],
                "summary": "Get an event by ID",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "event"},
                    "404": {"description": "event not found"}
                }
            },
            "put": {
                "tags": ["events"],
                "security": [{"BearerAuth": []}],
                "summary": "Update an event",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "updated event"}}
            },
            "delete": {
                "tags": ["events"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete an event",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "event deleted"}}
            }
        },
        "/events/{eventID}/register": {
            "post": {
                "tags": ["registrations"],
                "security": [{"BearerAuth": []}],
                "summary": "Register for an event",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "201": {"description": "registration"},
                    "403": {"description": "account not approved"},
                    "409": {"description": "event full or already registered"}
                }
            }
        },
        "/events/{eventID}/unregister": {
            "delete": {
                "tags": ["registrations"],
                "security": [{"BearerAuth": []}],
                "summary": "Give up a seat",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "unregistered; includes promoted waitlist registration, if any"},
                    "404": {"description": "registration not found"}
                }
            }
        },
        "/events/{eventID}/waitlist": {
            "post": {
                "tags": ["registrations"],
                "security": [{"BearerAuth": []}],
                "summary": "Join the waitlist for a full event",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "201": {"description": "waitlist entry"},
                    "409": {"description": "event not full, already registered, or already waitlisted"}
                }
            }
        },
        "/events/{eventID}/loghours": {
            "post": {
                "tags": ["hours"],
                "security": [{"BearerAuth": []}],
                "summary": "Submit volunteered hours",
                "parameters": [{"name": "eventID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "201": {"description": "pending hour log"},
                    "400": {"description": "invalid hours or the event has not started"}
                }
            }
        },
        "/messages": {
            "post": {
                "tags": ["messages"],
                "security": [{"BearerAuth": []}],
                "summary": "Send a support message",
                "responses": {"201": {"description": "created message"}}
            },
            "get": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "List all support messages",
                "responses": {"200": {"description": "paginated messages with sender details"}}
            }
        },
        "/messages/my": {
            "get": {
                "tags": ["messages"],
                "security": [{"BearerAuth": []}],
                "summary": "List my support messages",
                "responses": {"200": {"description": "messages, newest first"}}
            }
        },
        "/messages/{messageID}/read": {
            "put": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Mark a support message as read",
                "parameters": [{"name": "messageID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "marked as read"},
                    "404": {"description": "message not found"}
                }
            }
        },
        "/messages/{messageID}/reply": {
            "put": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Reply to a support message",
                "parameters": [{"name": "messageID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "replied message"},
                    "404": {"description": "message not found"}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Admin dashboard counters",
                "responses": {"200": {"description": "stats"}}
            }
        },
        "/admin/pending-hours": {
            "get": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "List pending hour logs",
                "responses": {"200": {"description": "pending logs, oldest submission first"}}
            }
        },
        "/admin/hours/{logID}/status": {
            "put": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Approve or reject an hour log",
                "parameters": [{"name": "logID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "hour log updated"},
                    "404": {"description": "hour log not found"}
                }
            }
        },
        "/ai/generate": {
            "post": {
                "tags": ["ai"],
                "security": [{"BearerAuth": []}],
                "summary": "Draft an event description",
                "responses": {
                    "200": {"description": "generated description"},
                    "502": {"description": "text generation unavailable"}
                }
            }
        },
        "/ai/classify": {
            "post": {
                "tags": ["ai"],
                "security": [{"BearerAuth": []}],
                "summary": "Suggest categories for an event",
                "responses": {"200": {"description": "categories; empty when the generator is unavailable"}}
            }
        },
        "/ai/recommendations": {
            "get": {
                "tags": ["ai"],
                "security": [{"BearerAuth": []}],
                "summary": "Recommend upcoming events for me",
                "responses": {"200": {"description": "events; empty when the generator is unavailable"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RallyPoint API",
	Description:      "Volunteer management backend: events, registrations, waitlists, hour logs, and support messages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
