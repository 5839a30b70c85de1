// Package middleware provides HTTP middleware for the math service.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting
//   - GlobalRateLimit: One token bucket shared by every client
//
// CORS Configuration:
//   - AllowOrigins: Permitted origin domains (CORS_ORIGINS)
//   - ExposeHeaders: Trace headers readable by the UI
//   - MaxAge: Preflight cache duration
//
// Rate Limiting:
//   - Per-IP tracking with idle client cleanup
//   - Token bucket algorithm from golang.org/x/time/rate
//   - Rejections use the same JSON shape as failed results
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.Origins...)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
