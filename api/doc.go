// Package api provides the HTTP API layer for the Tweets application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type GetTweetsInput struct {
//	    UserName string `query:"userName" required:"true" minLength:"1" maxLength:"255"`
//	    Page     int    `query:"page" minimum:"1" default:"1"`
//	    PerPage  int    `query:"per_page" minimum:"1" maximum:"100" default:"10"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 100,
//	    RateBurst: 20,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	tweetsHandler := handlers.NewTweetsHandler(tweetService)
//	tweetsHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "Invalid request parameters",
//	    "errors": [{"message": "page must be at least 1", "location": "query.page"}]
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
