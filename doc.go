// Package webapp is a small web application built to sit behind a cloud load
// balancer and report on the instance serving each request.
//
// # Overview
//
// Every instance in an auto scaling group runs the same binary. Requests are
// spread across instances, so each response names the host that produced it:
//
//	┌─────────────────┐
//	│  Load Balancer  │
//	└────────┬────────┘
//	         │ GET /health
//	┌────────▼────────┐       ┌─────────────────┐
//	│  webapp (Echo)  │──────►│  Host / DNS     │
//	│  :5000          │       │  (hostname, IP) │
//	└─────────────────┘       └─────────────────┘
//
// # API Endpoints
//
//   - GET  /            - HTML page describing the instance
//   - GET  /health      - Liveness probe for the load balancer
//   - HEAD /health      - Liveness probe without a body
//   - GET  /api/info    - Hostname, IP address, platform and deployment descriptors
//   - GET  /api/status  - Operational status with component checks
//   - GET  /docs/*      - Swagger UI and OpenAPI document
//
// Example /health response:
//
//	{
//	  "status": "healthy",
//	  "timestamp": "2026-03-01T12:00:00.000000Z",
//	  "service": "aws-scalable-webapp",
//	  "version": "1.0.0"
//	}
//
// # Configuration
//
// The deployment descriptors come from the environment the infrastructure
// templates set up:
//
//	ENVIRONMENT=Production
//	AWS_REGION=eu-west-1
//	INSTANCE_ID=i-0abc123
//	PORT=5000
//
// Everything else is read from config.yaml or WEBAPP_ prefixed variables.
// Generate a starting file with:
//
//	webapp config init
//
// # Usage
//
// Start the server:
//
//	webapp server
//
// Check a running instance from a container health check:
//
//	webapp probe --url http://127.0.0.1:5000
//
// # Development
//
// Run tests:
//
//	go test ./...
//
// Regenerate the OpenAPI document after changing handler annotations:
//
//	swag init -g cmd/webapp/main.go -o docs
//
// Build the binary:
//
//	go build -ldflags "-X main.Version=1.0.0" -o webapp ./cmd/webapp
package webapp
