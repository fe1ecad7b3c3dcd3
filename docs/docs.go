// Package docs registers the OpenAPI document served under /v1/swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/jobs": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Job JSON",
                        "in": "body",
                        "name": "job",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CreateJobRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a job",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/applicants": {
            "get": {
                "description": "Reloads the canonical roster of a job, one entry per user.",
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Applicant roster",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/applicants/{userId}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Applicant user ID",
                        "in": "path",
                        "name": "userId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "New status",
                        "in": "body",
                        "name": "status",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.UpdateStatusRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Accept or reject an applicant",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/apply": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Application JSON",
                        "in": "body",
                        "name": "application",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ApplyRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Apply to a job",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/close": {
            "post": {
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Close a job",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/rescore": {
            "post": {
                "description": "Recomputes every applicant's score and reloads the roster.",
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/v1.RescoreResponse"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Rescore applicants",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/top-candidates": {
            "get": {
                "description": "At most limit applicants by descending score.",
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Maximum entries (default 5)",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Top candidates",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/jobs/{jobId}/view": {
            "delete": {
                "description": "Drops the cached list of a job; responses still in flight for it are discarded.",
                "parameters": [
                    {
                        "description": "Job ID",
                        "in": "path",
                        "name": "jobId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Leave the applicants view",
                "tags": [
                    "jobs"
                ]
            }
        },
        "/notifications": {
            "get": {
                "description": "Rendered notifications matching filter. refresh=false serves the cache without reloading.",
                "parameters": [
                    {
                        "description": "all, unread, likes, comments, connections, jobs, posts, messages",
                        "in": "query",
                        "name": "filter",
                        "type": "string"
                    },
                    {
                        "description": "Reload before returning (default true)",
                        "in": "query",
                        "name": "refresh",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/v1.ListResponse"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Notification feed",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/notifications/read-all": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Mark every notification read",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/notifications/stream": {
            "get": {
                "description": "Websocket stream of unread counts, relationship and applicant changes, and navigation targets.",
                "parameters": [
                    {
                        "description": "Session token when headers cannot be set",
                        "in": "query",
                        "name": "token",
                        "type": "string"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Live session events",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/notifications/summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/v1.SummaryResponse"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Unread count and weekly summary",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/notifications/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Notification ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a notification",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/notifications/{id}/click": {
            "post": {
                "description": "Pushes the navigation target to connected streams and marks the notification read.",
                "parameters": [
                    {
                        "description": "Notification ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/v1.ClickResponse"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Open a notification",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "parameters": [
                    {
                        "description": "Notification ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Mark a notification read",
                "tags": [
                    "notifications"
                ]
            }
        },
        "/relationships": {
            "get": {
                "description": "Cached connections, pending incoming requests and suggestions. refresh=true reloads from the backend first.",
                "parameters": [
                    {
                        "description": "Reload before returning",
                        "in": "query",
                        "name": "refresh",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Relationship snapshot",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/relationships/connections/{userId}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Connected user ID",
                        "in": "path",
                        "name": "userId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Remove a connection",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/relationships/refresh": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reload relationships",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/relationships/requests/{id}": {
            "post": {
                "parameters": [
                    {
                        "description": "Target user ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Send a connection request",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/relationships/requests/{id}/accept": {
            "post": {
                "parameters": [
                    {
                        "description": "Request ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Accept a connection request",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/relationships/requests/{id}/reject": {
            "post": {
                "parameters": [
                    {
                        "description": "Request ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reject a connection request",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/relationships/status/{userId}": {
            "get": {
                "parameters": [
                    {
                        "description": "Other user ID",
                        "in": "path",
                        "name": "userId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "type": "object"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Relationship with a user",
                "tags": [
                    "relationships"
                ]
            }
        },
        "/session": {
            "delete": {
                "description": "Forgets the relationships, applicant lists and notifications cached for the calling session. Other sessions of the same user are kept.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "End the session",
                "tags": [
                    "session"
                ]
            }
        }
    },
    "definitions": {
        "response.ErrorBody": {
            "properties": {
                "details": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "kind": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "response.Response": {
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/response.ErrorBody"
                },
                "message": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "v1.ApplyRequest": {
            "properties": {
                "additionalAttachment": {
                    "type": "string"
                },
                "resumeUrl": {
                    "type": "string"
                }
            },
            "required": [
                "resumeUrl"
            ],
            "type": "object"
        },
        "v1.ClickResponse": {
            "properties": {
                "target": {
                    "type": "object"
                },
                "unread": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.CreateJobRequest": {
            "properties": {
                "description": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "salaryRange": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "description",
                "type",
                "location"
            ],
            "type": "object"
        },
        "v1.ListResponse": {
            "properties": {
                "items": {
                    "items": {
                        "type": "object"
                    },
                    "type": "array"
                },
                "total": {
                    "type": "integer"
                },
                "unread": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.RescoreResponse": {
            "properties": {
                "applicants": {
                    "type": "object"
                },
                "updated": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.SummaryResponse": {
            "properties": {
                "unread": {
                    "type": "integer"
                },
                "weekly": {
                    "type": "object"
                }
            },
            "type": "object"
        },
        "v1.UpdateStatusRequest": {
            "properties": {
                "status": {
                    "type": "object"
                }
            },
            "required": [
                "status"
            ],
            "type": "object"
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
	Host:             "localhost:8090",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Talent Session API",
	Description:      "Session-scoped relationship, applicant and notification stores in front of the platform backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
