package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/sonard/docs.go`.
//
// @title           sonard API
// @version         1.0
// @description     HTTP API for the Event Sonar discovery engine: catalog, filters, selection and the idle carousel.
//
// @contact.name   sonard maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
