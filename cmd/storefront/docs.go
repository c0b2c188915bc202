package main

// @title Storefront Detail Service API
// @version 1.0
// @description Backend-for-frontend for the product-detail surface: snapshot loading, variant selection, quantity bounding, purchase intents and review filtering.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Optional on every route; guests get the login redirect on purchase actions.

// @tag.name Detail
// @tag.description Session, selection and quantity endpoints

// @tag.name Purchase
// @tag.description Add-to-cart and buy-now intents
