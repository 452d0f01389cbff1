//go:build swagger
// +build swagger

// Package docs provides OpenAPI/Swagger documentation for the Paper API.
// This file is used solely for OpenAPI spec generation and is not runtime
// code.
package docs

// @title Paper API
// @version 0.0.1
// @description Backend service exposing CRUD operations over hierarchical folder resources owned by authenticated users

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @schemes http https
