// Package core contains the business logic for the Tweets API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Tweet, PageResult, Analytics)
// - tweets: Tweet fetching, normalization, pagination and analytics
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "tweets-app-api/core/interfaces"
//	    "tweets-app-api/core/tweets"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	service := tweets.NewTweetService(deps, tweets.Config{
//	    APIURL:   "https://upstream.example.com/tweets",
//	    APIToken: "secret",
//	})
//
//	// Fetch one page plus analytics over the full set
//	page, err := service.GetTweets(ctx, "jack", 1, 10)
package core
