package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the fixtures API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>partidos - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "partidos", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Team": {"type":"object","properties":{"id":{"type":"integer"},"name":{"type":"string"},"logo":{"type":"string"}}},
      "Partido": {
        "type": "object",
        "properties": {
          "_id": {"type":"string"},
          "league": {"type":"object","properties":{"id":{"type":"integer"},"name":{"type":"string"},"country":{"type":"string"},"logo":{"type":"string"}}},
          "teams": {"type":"object","properties":{"home":{"$ref":"#/components/schemas/Team"},"away":{"$ref":"#/components/schemas/Team"}}},
          "fixture": {"type":"object","properties":{"date":{"type":"string"},"status":{"type":"object","properties":{"long":{"type":"string"},"short":{"type":"string"},"elapsed":{"type":"integer","nullable":true},"extra":{"type":"integer","nullable":true}}},"venue":{"type":"object","properties":{"name":{"type":"string"},"city":{"type":"string"}}}}},
          "goals": {"type":"object","properties":{"home":{"type":"integer","nullable":true},"away":{"type":"integer","nullable":true}}}
        }
      },
      "PartidoPatch": {
        "type": "object",
        "required": ["teams", "goals"],
        "properties": {
          "teams": {"type":"object","required":["home","away"],"properties":{"home":{"type":"object","properties":{"name":{"type":"string"},"logo":{"type":"string"}}},"away":{"type":"object","properties":{"name":{"type":"string"},"logo":{"type":"string"}}}}},
          "goals": {"type":"object","properties":{"home":{"type":"integer"},"away":{"type":"integer"}}}
        }
      }
    }
  },
  "paths": {
    "/partidos": {
      "get": { "summary": "List every stored fixture", "responses": { "200": { "description": "array of fixtures" }, "500": { "description": "store error" } } },
      "post": {
        "summary": "Store a new fixture",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Partido"} } } },
        "responses": { "201": { "description": "created, echoes the stored fixture" }, "500": { "description": "store error" } }
      }
    },
    "/partidos/{id}": {
      "put": {
        "summary": "Overwrite the supplied team and goal fields",
        "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/PartidoPatch"} } } },
        "responses": { "200": { "description": "updated fixture" }, "400": { "description": "incomplete payload" }, "404": { "description": "unknown id" }, "500": { "description": "store error" } }
      },
      "delete": {
        "summary": "Delete a fixture",
        "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
        "responses": { "200": { "description": "deleted" }, "404": { "description": "unknown id" }, "500": { "description": "store error" } }
      }
    },
    "/status": { "get": { "summary": "List feed account snapshots", "responses": { "200": { "description": "array of status records" }, "500": { "description": "store error" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
