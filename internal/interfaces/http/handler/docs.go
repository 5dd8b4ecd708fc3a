package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DocsHandler serves the API description and the liveness probe
type DocsHandler struct {
	spec gin.H
}

// NewDocsHandler creates a docs handler describing the exposed surface
func NewDocsHandler(appName, version string) *DocsHandler {
	return &DocsHandler{spec: buildOpenAPISpec(appName, version)}
}

// RegisterRoutes registers the docs and health routes
func (h *DocsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/docs", h.Docs)
	r.GET("/health", h.Health)
}

// Docs returns the OpenAPI document
func (h *DocsHandler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, h.spec)
}

// Health returns liveness
func (h *DocsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// resourceDocs drives the per-resource path generation
var resourceDocs = []struct {
	Plural   string
	Singular string
	Tag      string
}{
	{"customers", "customer", "Customers"},
	{"products", "product", "Products"},
	{"services", "service", "Services"},
	{"expenses", "expense", "Expenses"},
	{"vendors", "vendor", "Vendors"},
	{"warehouses", "warehouse", "Warehouses"},
	{"transactions", "transaction", "Transactions"},
	{"pics", "pic", "PICs"},
}

func buildOpenAPISpec(appName, version string) gin.H {
	errorSchema := gin.H{"$ref": "#/components/schemas/Error"}

	paths := gin.H{
		"/login": gin.H{
			"post": gin.H{
				"tags":    []string{"Auth"},
				"summary": "Login user",
				"responses": gin.H{
					"200": gin.H{"description": "Successful login"},
					"400": gin.H{"description": "Missing username or password", "content": jsonContent(errorSchema)},
					"401": gin.H{"description": "Invalid credentials", "content": jsonContent(errorSchema)},
					"500": gin.H{"description": "Internal server error", "content": jsonContent(errorSchema)},
				},
			},
		},
		"/health": gin.H{
			"get": gin.H{
				"tags":      []string{"Meta"},
				"summary":   "Liveness probe",
				"responses": gin.H{"200": gin.H{"description": "Service is up"}},
			},
		},
	}

	for _, r := range resourceDocs {
		paths["/"+r.Plural] = gin.H{
			"get": gin.H{
				"tags":    []string{r.Tag},
				"summary": "List " + r.Plural,
				"responses": gin.H{
					"200": gin.H{"description": "All " + r.Plural},
					"500": gin.H{"description": "Internal server error", "content": jsonContent(errorSchema)},
				},
			},
			"post": gin.H{
				"tags":    []string{r.Tag},
				"summary": "Create " + r.Singular,
				"responses": gin.H{
					"200": gin.H{"description": "Created " + r.Singular},
					"400": gin.H{"description": "Invalid request body", "content": jsonContent(errorSchema)},
					"500": gin.H{"description": "Internal server error", "content": jsonContent(errorSchema)},
				},
			},
		}
		paths["/"+r.Plural+"/{id}"] = gin.H{
			"put": gin.H{
				"tags":       []string{r.Tag},
				"summary":    "Update " + r.Singular,
				"parameters": idParam(),
				"responses": gin.H{
					"200": gin.H{"description": "Updated " + r.Singular},
					"400": gin.H{"description": "Invalid request body or id", "content": jsonContent(errorSchema)},
					"404": gin.H{"description": capitalize(r.Singular) + " not found", "content": jsonContent(errorSchema)},
					"500": gin.H{"description": "Internal server error", "content": jsonContent(errorSchema)},
				},
			},
			"delete": gin.H{
				"tags":       []string{r.Tag},
				"summary":    "Delete " + r.Singular,
				"parameters": idParam(),
				"responses": gin.H{
					"200": gin.H{"description": "Deleted " + r.Singular},
					"400": gin.H{"description": "Invalid id", "content": jsonContent(errorSchema)},
					"404": gin.H{"description": capitalize(r.Singular) + " not found", "content": jsonContent(errorSchema)},
					"500": gin.H{"description": "Internal server error", "content": jsonContent(errorSchema)},
				},
			},
		}
	}

	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":   appName,
			"version": version,
		},
		"paths": paths,
		"components": gin.H{
			"schemas": gin.H{
				"Error": gin.H{
					"type":       "object",
					"properties": gin.H{"error": gin.H{"type": "string"}},
				},
			},
		},
	}
}

func jsonContent(schema gin.H) gin.H {
	return gin.H{"application/json": gin.H{"schema": schema}}
}

func idParam() []gin.H {
	return []gin.H{{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   gin.H{"type": "integer"},
	}}
}

func capitalize(s string) string {
	if s == "pic" {
		return "PIC"
	}
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
